package notification

import (
	"bytes"
	"html/template"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

var (
	minutesTmpl = template.Must(template.New("minutes").Parse(`<html><body>
<h2>{{.Meeting.Title}}</h2>
<p><b>Type:</b> {{.Meeting.Type}}<br>
<b>Time:</b> {{.Meeting.Time.Format "2006-01-02 15:04"}}<br>
<b>Location:</b> {{.Meeting.Location}}<br>
<b>Chair:</b> {{with .Meeting.Chair}}{{.Name}}{{end}}<br>
<b>Minute taker:</b> {{with .Meeting.MinuteTaker}}{{.Name}}{{end}}</p>
{{if not .Notice}}{{if .Meeting.ChairSpeech}}<h3>Chair speech</h3><p>{{.Meeting.ChairSpeech}}</p>{{end}}{{end}}
{{if .Meeting.Announcements}}<h3>Announcements</h3><ol>
{{range .Meeting.Announcements}}<li>{{.Content}}</li>
{{end}}</ol>{{end}}
{{if .Meeting.Motions}}<h3>Motions</h3><ol>
{{range .Meeting.Motions}}<li><b>{{.Description}}</b><br>{{.Content}}
{{if not $.Notice}}{{if .Resolution}}<br><i>Resolution:</i> {{.Resolution}}{{end}}
{{if .Execution}}<br><i>Execution:</i> {{.Execution}}{{end}}
<br><i>Status:</i> {{.Status}}{{end}}</li>
{{end}}</ol>{{end}}
{{if not .Notice}}{{if .Meeting.Extempores}}<h3>Extempores</h3><ol>
{{range .Meeting.Extempores}}<li>{{.Content}}</li>
{{end}}</ol>{{end}}{{end}}
{{if .Attendees}}<h3>{{if .Notice}}Invited{{else}}Attendance{{end}}</h3><ul>
{{range .Attendees}}<li>{{with .Person}}{{.Name}}{{end}}{{if not .IsMember}} (guest){{end}}{{if not $.Notice}}{{if .IsPresent}} - present{{else}} - absent{{end}}{{end}}</li>
{{end}}</ul>{{end}}
</body></html>`))

	modifyTmpl = template.Must(template.New("modify").Parse(`<html><body>
<h2>Minutes modification request</h2>
<p><b>Meeting:</b> {{.Meeting.Title}} ({{.Meeting.Time.Format "2006-01-02"}})</p>
<p><b>From:</b> {{.From}}</p>
<p>{{.Body}}</p>
</body></html>`))

	recoveryTmpl = template.Must(template.New("recovery").Parse(`<html><body>
<p>Hello {{.Name}},</p>
<p>Your password has been reset. Your new password is:</p>
<p><b>{{.Password}}</b></p>
<p>Please sign in and change it as soon as possible.</p>
</body></html>`))
)

func renderMinutes(meeting *entities.Meeting, attendees []*entities.Attendee, notice bool) (string, error) {
	var buf bytes.Buffer
	err := minutesTmpl.Execute(&buf, struct {
		Meeting   *entities.Meeting
		Attendees []*entities.Attendee
		Notice    bool
	}{meeting, attendees, notice})
	return buf.String(), err
}

func renderModifyRequest(meeting *entities.Meeting, from, body string) (string, error) {
	var buf bytes.Buffer
	err := modifyTmpl.Execute(&buf, struct {
		Meeting *entities.Meeting
		From    string
		Body    string
	}{meeting, from, body})
	return buf.String(), err
}

func renderPasswordRecovery(name, password string) (string, error) {
	var buf bytes.Buffer
	err := recoveryTmpl.Execute(&buf, struct {
		Name     string
		Password string
	}{name, password})
	return buf.String(), err
}
