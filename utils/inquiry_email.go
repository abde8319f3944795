package utils

import (
	"errors"
	"fmt"
	"html"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// InquiryNotification carries everything the admin notification email needs:
// the submitted contact details plus the package/destination names resolved
// at submission time.
type InquiryNotification struct {
	Name            string
	Email           string
	Phone           string
	PackageName     string
	DestinationName string
	Travelers       string
	Adults          string
	Children        string
	TravelDate      string
	Message         string
}

var ErrMailNotConfigured = errors.New("smtp credentials not configured")

// SendInquiryNotification emails a summary of a new inquiry to the configured
// admin address. Sending is best-effort: callers log the returned error and
// never fail the inquiry submission because of it.
func SendInquiryNotification(n InquiryNotification) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	notifyTo := os.Getenv("ADMIN_NOTIFY_EMAIL")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" || notifyTo == "" {
		log.Printf("[MOCK EMAIL] inquiry from:%s <%s> subject:%q", n.Name, n.Email, InquirySubject(n))
		return ErrMailNotConfigured
	}

	port := 587
	if p, err := strconv.Atoi(strings.TrimSpace(smtpPort)); err == nil && p > 0 {
		port = p
	}

	m := gomail.NewMessage()
	from := smtpUser
	if fromName := os.Getenv("SMTP_FROM_NAME"); fromName != "" {
		from = m.FormatAddress(smtpUser, fromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", notifyTo)
	m.SetHeader("Subject", InquirySubject(n))
	m.SetBody("text/plain", InquiryPlainBody(n))
	m.AddAlternative("text/html", InquiryHTMLBody(n))

	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send inquiry notification to %s: %v", notifyTo, err)
		return err
	}

	log.Printf("Inquiry notification sent to %s", notifyTo)
	return nil
}

// InquirySubject builds "New Inquiry from <name>", suffixed with the package
// name when available, otherwise the destination name.
func InquirySubject(n InquiryNotification) string {
	subject := "New Inquiry from " + n.Name
	if n.PackageName != "" {
		return subject + " - " + n.PackageName
	}
	if n.DestinationName != "" {
		return subject + " - " + n.DestinationName
	}
	return subject
}

func hasTravelDetails(n InquiryNotification) bool {
	return n.Travelers != "" || n.Adults != "" || n.Children != "" || n.TravelDate != ""
}

func InquiryPlainBody(n InquiryNotification) string {
	var sb strings.Builder
	sb.WriteString("New inquiry received.\n\n")
	sb.WriteString("Contact Information\n")
	sb.WriteString("Name: " + n.Name + "\n")
	sb.WriteString("Email: " + n.Email + "\n")
	if n.Phone != "" {
		sb.WriteString("Phone: " + n.Phone + "\n")
	}

	if n.PackageName != "" || n.DestinationName != "" {
		sb.WriteString("\nTravel Interest\n")
		if n.PackageName != "" {
			sb.WriteString("Package: " + n.PackageName + "\n")
		}
		if n.DestinationName != "" {
			sb.WriteString("Destination: " + n.DestinationName + "\n")
		}
	}

	if hasTravelDetails(n) {
		sb.WriteString("\nTravel Details\n")
		if n.Travelers != "" {
			sb.WriteString("Travelers: " + n.Travelers + "\n")
		}
		if n.Adults != "" {
			sb.WriteString("Adults: " + n.Adults + "\n")
		}
		if n.Children != "" {
			sb.WriteString("Children: " + n.Children + "\n")
		}
		if n.TravelDate != "" {
			sb.WriteString("Preferred Travel Date: " + n.TravelDate + "\n")
		}
	}

	sb.WriteString("\nMessage\n")
	sb.WriteString(n.Message + "\n")
	return sb.String()
}

func InquiryHTMLBody(n InquiryNotification) string {
	esc := html.EscapeString

	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("<tr><td class=\"label\">%s</td><td>%s</td></tr>", label, esc(value))
	}

	var sections strings.Builder
	sections.WriteString("<h3>Contact Information</h3><table>")
	sections.WriteString(row("Name", n.Name))
	sections.WriteString(row("Email", n.Email))
	sections.WriteString(row("Phone", n.Phone))
	sections.WriteString("</table>")

	if n.PackageName != "" || n.DestinationName != "" {
		sections.WriteString("<h3>Travel Interest</h3><table>")
		sections.WriteString(row("Package", n.PackageName))
		sections.WriteString(row("Destination", n.DestinationName))
		sections.WriteString("</table>")
	}

	if hasTravelDetails(n) {
		sections.WriteString("<h3>Travel Details</h3><table>")
		sections.WriteString(row("Travelers", n.Travelers))
		sections.WriteString(row("Adults", n.Adults))
		sections.WriteString(row("Children", n.Children))
		sections.WriteString(row("Preferred Travel Date", n.TravelDate))
		sections.WriteString("</table>")
	}

	message := strings.ReplaceAll(esc(n.Message), "\n", "<br>")

	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>New Inquiry</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
table { border-collapse:collapse; }
td { padding:4px 12px 4px 0; vertical-align:top; }
td.label { color:#667; white-space:nowrap; }
.message { background:#f8fafc; border:1px solid #e6eef6; padding:12px; border-radius:6px; margin-top:8px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>New Inquiry</h2>
    %s
    <h3>Message</h3>
    <div class="message">%s</div>
  </div>
</div>
</body>
</html>`, sections.String(), message)
}
