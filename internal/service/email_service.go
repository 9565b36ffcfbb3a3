package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"quizmaker/internal/models"
)

// ResultNotice describes a finished attempt
type ResultNotice struct {
	Student    models.User
	TestName   string
	Result     models.ResultSummary
	TimedOut   bool
	FinishedAt time.Time
}

// ResultNotifier is told about every attempt that reaches its results
type ResultNotifier interface {
	NotifyResult(ctx context.Context, notice ResultNotice) error
}

// sesAPI is the part of the SES client the email service uses
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService sends result summaries via Amazon SES
type EmailService struct {
	client     sesAPI
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
}

// NewEmailService creates a new email service. With an empty fromEmail the
// service is created disabled and only logs what it would have sent.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName, appBaseURL string, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, debug: debug}, nil
	}

	if debug {
		log.Printf("[DEBUG] Initializing email service with AWS SES")
		log.Printf("[DEBUG] AWS Region: %s", awsRegion)
		log.Printf("[DEBUG] From: %s <%s>", fromName, fromEmail)
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return newEmailServiceWithClient(sesv2.NewFromConfig(cfg), fromEmail, fromName, appBaseURL, debug), nil
}

func newEmailServiceWithClient(client sesAPI, fromEmail, fromName, appBaseURL string, debug bool) *EmailService {
	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// NotifyResult mails the student a summary of their attempt
func (s *EmailService) NotifyResult(ctx context.Context, notice ResultNotice) error {
	if s.debug {
		log.Printf("[DEBUG] NotifyResult called: to=%s, test=%s", notice.Student.Email, notice.TestName)
	}

	if !s.enabled {
		log.Printf("Skipping email send (service disabled): result of %q to %s", notice.TestName, notice.Student.Email)
		return nil
	}
	if notice.Student.Email == "" {
		return fmt.Errorf("no e-mail address for student %d", notice.Student.ID)
	}

	subject := fmt.Sprintf("Your result for %s: %d%%", notice.TestName, notice.Result.Percentage)
	return s.sendEmail(ctx, notice.Student.Email, subject, resultHTML(notice, s.appBaseURL), resultText(notice, s.appBaseURL))
}

func resultText(n ResultNotice, baseURL string) string {
	var b strings.Builder
	r := n.Result

	fmt.Fprintf(&b, "Hi %s,\n\n", n.Student.Name)
	if n.TimedOut {
		b.WriteString("Time ran out and your test was submitted automatically.\n\n")
	}
	fmt.Fprintf(&b, "%s\n\n", r.Outcome())
	fmt.Fprintf(&b, "Test: %s\n", n.TestName)
	fmt.Fprintf(&b, "Score: %d%%\n", r.Percentage)
	fmt.Fprintf(&b, "%d out of %d questions correct\n", r.CorrectCount, r.TotalQuestions)
	fmt.Fprintf(&b, "Passing Criteria: %d correct answers\n", r.PassingThreshold)
	if r.UnansweredCount > 0 {
		fmt.Fprintf(&b, "Unanswered: %d\n", r.UnansweredCount)
	}

	b.WriteString("\nDetailed Results:\n")
	for i, d := range r.Detail {
		mark := "correct"
		if !d.IsCorrect {
			mark = "wrong"
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n   Your answer: %s\n", i+1, d.QuestionText, mark, d.UserAnswerText)
		if !d.IsCorrect {
			fmt.Fprintf(&b, "   Correct answer: %s\n", d.CorrectAnswerText)
		}
	}

	fmt.Fprintf(&b, "\nDashboard: %s/student/dashboard\n", baseURL)
	b.WriteString("\n---\nThis is an automated email from QuizMaker. Please do not reply.\n")
	return b.String()
}

func resultHTML(n ResultNotice, baseURL string) string {
	var rows strings.Builder
	for i, d := range n.Result.Detail {
		color := "#2e7d32"
		if !d.IsCorrect {
			color = "#c62828"
		}
		fmt.Fprintf(&rows, `<li style="color: %s;"><strong>%d. %s</strong><br>Your answer: %s`,
			color, i+1, html.EscapeString(d.QuestionText), html.EscapeString(d.UserAnswerText))
		if !d.IsCorrect {
			fmt.Fprintf(&rows, `<br>Correct answer: %s`, html.EscapeString(d.CorrectAnswerText))
		}
		rows.WriteString("</li>\n")
	}

	r := n.Result
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Hi %s,</p>
	<h2>%s</h2>
	<p>%s</p>
	<p><strong>Score: %d%%</strong><br>%d out of %d questions correct<br>Passing Criteria: %d correct answers</p>
	<ol style="list-style: none; padding: 0;">
%s	</ol>
	<p><a href="%s/student/dashboard">Back to your dashboard</a></p>
	<p style="font-size: 12px; color: #666;">This is an automated email from QuizMaker. Please do not reply.</p>
</body>
</html>`,
		html.EscapeString(n.Student.Name), html.EscapeString(n.TestName), r.Outcome(),
		r.Percentage, r.CorrectCount, r.TotalQuestions, r.PassingThreshold,
		rows.String(), baseURL)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	if s.debug {
		log.Printf("[DEBUG] Sending email: from=%s, to=%s, subject=%s", fromAddress, toEmail, subject)
		log.Printf("[DEBUG] HTML body length: %d bytes, text body length: %d bytes", len(htmlBody), len(textBody))
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug && result.MessageId != nil {
		log.Printf("[DEBUG] Message ID: %s", *result.MessageId)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
