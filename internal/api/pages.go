package api

import (
	"html/template"

	"github.com/runhub/directory-api/internal/models"
)

type approvalPageData struct {
	Club      *models.ClubRecord
	Approved  bool
	EmailSent bool
	ClubURL   string
}

type confirmPageData struct {
	Email string
}

type errorPageData struct {
	Message string
}

const pageStyle = `
  body { font-family: -apple-system, Helvetica, Arial, sans-serif; background: #f4f4f5; margin: 0; padding: 40px 16px; }
  .card { max-width: 520px; margin: 0 auto; background: #fff; border-radius: 8px; padding: 32px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
  h1 { font-size: 22px; margin-top: 0; }
  .ok { color: #16a34a; }
  .bad { color: #dc2626; }
  .meta { color: #555; font-size: 14px; line-height: 1.6; }
  a.button { display: inline-block; margin-top: 16px; padding: 10px 18px; background: #111; color: #fff; border-radius: 6px; text-decoration: none; }
`

var approvalPageTmpl = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Club {{if .Approved}}Approved{{else}}Rejected{{end}}</title><style>` + pageStyle + `</style></head>
<body>
  <div class="card">
    {{if .Approved}}
      <h1 class="ok">✓ Club Approved</h1>
      <p><strong>{{.Club.ClubName}}</strong> is now live in the directory.</p>
    {{else}}
      <h1 class="bad">Club Rejected</h1>
      <p><strong>{{.Club.ClubName}}</strong> has been rejected and will not appear in the directory.</p>
    {{end}}
    <p class="meta">
      Contact: {{.Club.ContactName}}<br>
      Location: {{.Club.SuburbOrTown}}, {{.Club.State}}<br>
      Status: {{.Club.Status}}<br>
      {{if .EmailSent}}A confirmation email has been sent to the club contact.{{else}}No confirmation email was sent.{{end}}
    </p>
    {{if .Approved}}<a class="button" href="{{.ClubURL}}">View club page</a>{{end}}
  </div>
</body>
</html>
`))

var newsletterConfirmTmpl = template.Must(template.New("confirm").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Subscription Confirmed</title><style>` + pageStyle + `</style></head>
<body>
  <div class="card">
    <h1 class="ok">✓ You're subscribed</h1>
    <p>{{if .Email}}<strong>{{.Email}}</strong> is{{else}}You're{{end}} now on the list. We'll let you know when new clubs launch near you.</p>
  </div>
</body>
</html>
`))

var errorPageTmpl = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Something went wrong</title><style>` + pageStyle + `</style></head>
<body>
  <div class="card">
    <h1 class="bad">Something went wrong</h1>
    <p>{{.Message}}</p>
  </div>
</body>
</html>
`))
