package mailer

import (
	"html/template"

	"github.com/runhub/directory-api/internal/models"
)

type submissionData struct {
	Club       *models.ClubRecord
	ApproveURL string
	RejectURL  string
}

type approvalData struct {
	Club    *models.ClubRecord
	ClubURL string
}

type contactData struct {
	Request     *models.ContactRequest
	SubmittedAt string
}

var submissionTmpl = template.Must(template.New("submission").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #021fdf; border-bottom: 2px solid #021fdf; padding-bottom: 10px;">New Club Submission</h1>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #333; margin-top: 0;">{{.Club.ClubName}}</h2>
    <p><strong>Contact:</strong> {{.Club.ContactName}}</p>
    <p><strong>Leader:</strong> {{.Club.LeaderName}}</p>
    <p><strong>Email:</strong> {{.Club.ContactEmail}}</p>
    {{if .Club.ContactMobile}}<p><strong>Mobile:</strong> {{.Club.ContactMobile}}</p>{{end}}
    <p><strong>Location:</strong> {{.Club.SuburbOrTown}}, {{.Club.State}} {{.Club.Postcode}}</p>
    <p><strong>Club Type:</strong> {{.Club.ClubType}}</p>
    <p><strong>Cost:</strong> {{.Club.IsPaid}}</p>
  </div>

  <div style="margin: 20px 0;">
    <h3>Short Bio:</h3>
    <div style="background-color: #f1f5f9; padding: 15px; border-radius: 5px;">{{.Club.ShortBio}}</div>
  </div>

  {{if .Club.RunSessions}}
  <div style="margin: 20px 0;">
    <h3>Run Sessions:</h3>
    {{range .Club.RunSessions}}
    <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 10px 0;">
      <p style="margin: 5px 0;"><strong>Day:</strong> {{.Day}}</p>
      <p style="margin: 5px 0;"><strong>Time:</strong> {{.Time}}</p>
      <p style="margin: 5px 0;"><strong>Location:</strong> {{.Location}}</p>
      <p style="margin: 5px 0;"><strong>Run Type:</strong> {{.RunType}}</p>
      {{if .Distance}}<p style="margin: 5px 0;"><strong>Distance:</strong> {{.Distance}}</p>{{end}}
      {{if .Description}}<p style="margin: 5px 0;"><strong>Details:</strong> {{.Description}}</p>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  <div style="margin: 30px 0; text-align: center;">
    <a href="{{.ApproveURL}}" style="background-color: #22c55e; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-right: 10px; display: inline-block; font-weight: bold;">APPROVE CLUB</a>
    <a href="{{.RejectURL}}" style="background-color: #ef4444; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block; font-weight: bold;">REJECT CLUB</a>
  </div>

  <div style="border-top: 1px solid #e5e7eb; padding-top: 20px; margin-top: 30px; font-size: 12px; color: #666;">
    <p>This email was sent from the RunHub Directory club submission system.</p>
    <p>Club ID: {{.Club.ID}}</p>
  </div>
</div>
`))

var approvalTmpl = template.Must(template.New("approval").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #021fdf; border-bottom: 2px solid #021fdf; padding-bottom: 10px;">Welcome to RunHub Directory!</h1>

  <div style="background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #22c55e; margin-top: 0;">Club Approved!</h2>
    <p>Hi {{.Club.ContactName}},</p>
    <p>Great news! <strong>{{.Club.ClubName}}</strong> has been approved and is now live on RunHub Directory.</p>
  </div>

  <div style="margin: 20px 0;">
    <p>Your club is now visible to runners across Australia who are looking for their perfect running community.</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.ClubURL}}" style="background-color: #021fdf; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block; font-weight: bold;">View Your Club Page</a>
    </div>
  </div>
</div>
`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #021fdf; border-bottom: 2px solid #021fdf; padding-bottom: 10px;">Contact Form Submission</h1>

  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #333; margin-top: 0;">{{.Request.Subject}}</h2>
    <p><strong>From:</strong> {{.Request.Name}}</p>
    <p><strong>Email:</strong> {{.Request.Email}}</p>
  </div>

  <div style="margin: 20px 0;">
    <h3>Message:</h3>
    <div style="background-color: #f1f5f9; padding: 15px; border-radius: 5px; white-space: pre-wrap;">{{.Request.Message}}</div>
  </div>

  <div style="border-top: 1px solid #e5e7eb; padding-top: 20px; margin-top: 30px; font-size: 12px; color: #666;">
    <p>This email was sent from the RunHub Directory contact form.</p>
    <p>Submitted at: {{.SubmittedAt}}</p>
  </div>
</div>
`))
