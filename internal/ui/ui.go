package ui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/gitguard/internal/errors"
	"github.com/thomas-vilte/gitguard/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	GuardEmoji   = "🛡️"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
)

// SmartSpinner wraps the terminal spinner used while the analysis or the AI
// call is in flight.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+GuardEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func PrintSuccess(msg string) {
	fmt.Printf("%s %s\n", SuccessEmoji, msg)
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), msg)
}

func PrintWarning(msg string) {
	fmt.Printf("%s %s\n", WarningEmoji, msg)
}

func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", InfoEmoji, msg)
}

func PrintSectionBanner(msg string) {
	separator := Info.Sprint("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("\n%s\n%s %s\n%s\n", separator, GuardEmoji, Accent.Sprint(msg), separator)
}

// HandleAppError renders a domain error with its suggestion, falling back to
// the plain error text for anything else.
func HandleAppError(err error, t *i18n.Translations) {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		_, _ = Error.Printf("❌ %s\n", appErr.Message)
		if appErr.Suggestion != "" {
			fmt.Printf("   %s %s\n", Dim.Sprint("💡"), appErr.Suggestion)
		}
		return
	}
	_, _ = Error.Printf("❌ %v\n", err)
}
