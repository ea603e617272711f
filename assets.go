package pubadmin

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAssetList(c echo.Context) error {
	return a.renderAssetList(c, c.QueryParam("msg"))
}

// handleAssetUpload is the two-phase upload: forward the file to the external
// endpoint, then persist the returned metadata as an asset document. The
// redirect back to the list is the authoritative refresh; nothing is kept
// from the request itself.
func (a *App) handleAssetUpload(c echo.Context) error {
	fileName := strings.TrimSpace(c.FormValue("fileName"))
	fileHeader, err := c.FormFile("file")
	if err != nil || fileName == "" {
		return a.renderAssetList(c, "Please provide a file and a file name.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	res, err := uploadAsset(c.Request().Context(), a.httpClient, a.Config.UploadEndpoint, fileName, src)
	if err != nil {
		c.Logger().Errorf("upload asset: %v", err)
		return a.renderAssetList(c, "Failed to upload asset.")
	}

	fields := map[string]any{
		"fileName":   res.FileName,
		"fileUrl":    res.FileURL,
		"uploadedAt": timestamp(res.UploadedAt),
	}
	if _, err := a.Store.Create(c.Request().Context(), ColAssets, fields); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/assets/?msg=Asset+uploaded+successfully.")
}

// handleAssetDelete targets the store-assigned document id. File names are
// display values only and are not assumed unique.
func (a *App) handleAssetDelete(c echo.Context) error {
	if err := a.Store.Delete(c.Request().Context(), ColAssets, c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/assets/")
}

func (a *App) renderAssetList(c echo.Context, msg string) error {
	docs, err := a.Store.List(c.Request().Context(), ColAssets)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Assets(AssetsFromDocs(docs), msg, CsrfToken(c)))
}
