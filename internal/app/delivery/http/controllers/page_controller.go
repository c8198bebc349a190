package controllers

import (
	"html/template"
	"net/http"
	"sync"

	"presence-service/internal/pkg/constvars"
	"presence-service/internal/pkg/exceptions"
	"presence-service/internal/pkg/utils"
	"presence-service/web"

	"go.uber.org/zap"
)

type PageController struct {
	Log       *zap.Logger
	Templates *template.Template
}

var (
	pageControllerInstance *PageController
	oncePageController     sync.Once
)

func NewPageController(logger *zap.Logger) *PageController {
	oncePageController.Do(func() {
		instance := &PageController{
			Log:       logger,
			Templates: template.Must(template.ParseFS(web.Templates(), "*.html")),
		}
		pageControllerInstance = instance
	})
	return pageControllerInstance
}

func (ctrl *PageController) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/presence_weekday", http.StatusFound)
}

func (ctrl *PageController) PresenceWeekday(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, "presence_weekday.html")
}

func (ctrl *PageController) MeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, "mean_time_weekday.html")
}

func (ctrl *PageController) PresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, "presence_start_end.html")
}

func (ctrl *PageController) render(w http.ResponseWriter, templateName string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	if err := ctrl.Templates.ExecuteTemplate(w, templateName, nil); err != nil {
		ctrl.Log.Error("failed to execute template",
			zap.String("template", templateName),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRenderTemplate(err, templateName))
	}
}
