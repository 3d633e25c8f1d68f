package file

import (
	"path/filepath"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/service"
)

type Controller struct {
	templatePath string
}

func NewController(templatePath string) *Controller {
	return &Controller{templatePath: templatePath}
}

// DownloadTemplate serves the roster upload template, generating it on
// first request.
func (uc Controller) DownloadTemplate(c *web.Context) error {
	path, err := service.EnsureRosterTemplate(uc.templatePath)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(path)

	return nil
}
