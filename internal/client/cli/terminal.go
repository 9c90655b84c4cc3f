package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/diradmin/internal/client/flows"
	"github.com/dmitrijs2005/diradmin/internal/client/forms"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/common"
	"github.com/gosuri/uitable"
)

// terminalNotifier prints notifications as "[kind] message" lines.
type terminalNotifier struct {
	out io.Writer
}

func (n *terminalNotifier) Notify(kind flows.NotifyKind, message string) {
	fmt.Fprintf(n.out, "[%s] %s\n", kind, message)
}

// terminalNavigator remembers the active view; the REPL shows it in the prompt.
type terminalNavigator struct {
	route string
}

func (n *terminalNavigator) Navigate(route string) { n.route = route }
func (n *terminalNavigator) Route() string { return n.route }

// terminalDialog walks the user through the fields of a UserDialog.
// Pressing Enter keeps a field's current value.
type terminalDialog struct {
	reader *bufio.Reader
	out    io.Writer
}

func (t *terminalDialog) Confirm(ctx context.Context, d *flows.UserDialog) (models.UserInput, error) {
	if d.Editing() {
		fmt.Fprintf(t.out, "Edit user #%d\n", *d.Form.ID)
	} else {
		fmt.Fprintln(t.out, "New user")
	}
	t.printCountries(d)

	for {
		for _, fd := range forms.UserFields {
			if err := t.prompt(d, fd); err != nil {
				if errors.Is(err, io.EOF) {
					return models.UserInput{}, d.Cancel()
				}
				return models.UserInput{}, err
			}
			if err := ctx.Err(); err != nil {
				_ = d.Cancel()
				return models.UserInput{}, err
			}
		}
		t.printErrors(d)

		action, err := getSimpleText(t.reader, "[s]ubmit, [e]dit again or [c]ancel", t.out)
		if err != nil {
			return models.UserInput{}, d.Cancel()
		}
		if err := ctx.Err(); err != nil {
			_ = d.Cancel()
			return models.UserInput{}, err
		}
		switch action {
		case "c", "cancel":
			return models.UserInput{}, d.Cancel()
		case "", "s", "submit":
			values, err := d.Submit()
			if errors.Is(err, forms.ErrInvalidForm) {
				fmt.Fprintln(t.out, "The form has errors and cannot be submitted")
				continue
			}
			return values, err
		}
	}
}

func (t *terminalDialog) prompt(d *flows.UserDialog, fd forms.UserField) error {
	current := d.Form.Value(fd.Name)
	shown := current
	if fd.Secret && current != "" {
		shown = "****"
	}
	label := fd.Label
	if fd.Flag {
		label += " (yes/no)"
	}
	prompt := fmt.Sprintf("%s [%s]", label, shown)

	var text string
	if fd.Secret {
		pw, err := getPassword(t.reader, prompt, t.out)
		if err != nil {
			return err
		}
		text = string(pw)
		common.WipeByteArray(pw)
	} else {
		var err error
		if text, err = getSimpleText(t.reader, prompt, t.out); err != nil {
			return err
		}
	}

	if text != "" {
		if err := d.Form.Set(fd.Name, text); err != nil {
			fmt.Fprintf(t.out, "  ! %s\n", err)
		}
	}
	if msg := d.ErrorMessage(fd.Name); msg != "" {
		fmt.Fprintf(t.out, "  ! %s\n", msg)
	}
	return nil
}

func (t *terminalDialog) printErrors(d *flows.UserDialog) {
	for _, fd := range forms.UserFields {
		if msg := d.ErrorMessage(fd.Name); msg != "" {
			fmt.Fprintf(t.out, "- %s: %s\n", fd.Label, msg)
		}
	}
	if msg := d.Form.FormErrorMessage(); msg != "" {
		fmt.Fprintf(t.out, "- %s\n", msg)
	}
}

func (t *terminalDialog) printCountries(d *flows.UserDialog) {
	countries := d.Countries()
	if len(countries) == 0 {
		fmt.Fprintln(t.out, "No country options available")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "CODE", "PHONE CODE", "COUNTRY")
	for _, c := range countries {
		table.AddRow(c.ID, c.ISO2, c.PhoneCode, c.DisplayName())
	}
	fmt.Fprintln(t.out, table)
}
