// Package templates renders the HTML pages from an embedded template
// set. Every page shares the layout defined in layout.html.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ostapdev/teamwheel/internal/model"
)

//go:embed *.html
var files embed.FS

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{
		"index.html",
		"login.html",
		"koleso.html",
		"admin.html",
		"logs.html",
		"forbidden.html",
	} {
		pages[name] = template.Must(template.ParseFS(files, "layout.html", name))
	}
}

// FlashMessage is a one-shot message shown at the top of the next page
type FlashMessage struct {
	Type    string
	Message string
}

// PageData is the data shared by every page
type PageData struct {
	Title    string
	Username string
	Team     model.TeamID
	IsAdmin  bool
	Flash    *FlashMessage
}

// DashboardData is the data for the home page
type DashboardData struct {
	PageData
	Standings []*model.TeamScore
}

// LoginData is the data for the combined login/register page
type LoginData struct {
	PageData
	Error    string
	Username string
	Teams    []model.TeamID
}

// WheelData is the data for the wheel page
type WheelData struct {
	PageData
	Standings []*model.TeamScore
}

// RosterTeam is one team's roster block on the admin page
type RosterTeam struct {
	Score   *model.TeamScore
	Members []string
}

// AdminData is the data for the admin page
type AdminData struct {
	PageData
	Teams []RosterTeam
}

// LogsData is the data for the action log page
type LogsData struct {
	PageData
	Entries []*model.ActionLogEntry
	// Available is false when the storage backend keeps no log
	Available bool
}

// Render executes the named page template into w
func Render(w io.Writer, name string, data any) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
