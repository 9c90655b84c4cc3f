package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/diradmin/internal/client/flows"
	"github.com/dmitrijs2005/diradmin/internal/client/models"
	"github.com/dmitrijs2005/diradmin/internal/client/services"
	"github.com/dmitrijs2005/diradmin/internal/client/table"
	"github.com/gosuri/uitable"
)

// listColumns are the columns printed by renderUsers. Sorting accepts
// every column in flows.UserColumns.
var listColumns = []string{
	"id", "name", "father_name", "gender", "date_of_birth", "country",
	"phone", "email", "type", "active", "is_premium",
}

var columnValues = func() map[string]func(models.User) string {
	m := make(map[string]func(models.User) string, len(flows.UserColumns))
	for _, c := range flows.UserColumns {
		m[c.Name] = c.Value
	}
	return m
}()

func renderUsers(w io.Writer, l *flows.UserList) {
	rows := l.Rows()
	if len(rows) == 0 {
		if l.Filter() != "" {
			fmt.Fprintf(w, "No data matching the filter %q\n", l.Filter())
		} else {
			fmt.Fprintln(w, "No users found")
		}
	} else {
		t := uitable.New()
		t.MaxColWidth = 24
		t.Wrap = true
		t.RightAlign(0)

		header := make([]any, len(listColumns))
		for i, c := range listColumns {
			header[i] = c
		}
		t.AddRow(header...)

		for _, u := range rows {
			cells := make([]any, len(listColumns))
			for i, c := range listColumns {
				cells[i] = columnValues[c](u)
			}
			t.AddRow(cells...)
		}
		fmt.Fprintln(w, t)
	}

	footer := fmt.Sprintf("Page %d of %d | %d users | size %d", l.PageIndex()+1, l.PageCount(), l.Total(), l.PageSize())
	if f := l.Filter(); f != "" {
		footer += fmt.Sprintf(" | filter %q", f)
	}
	if col, dir := l.Sort(); col != "" && dir != table.None {
		footer += " | sort " + col + " " + directionName(dir)
	}
	fmt.Fprintln(w, footer)
}

func directionName(d table.Direction) string {
	if d == table.Desc {
		return "desc"
	}
	return "asc"
}

func renderProfile(w io.Writer, u *models.User, details []flows.Detail, image string) {
	if u == nil {
		return
	}
	fmt.Fprintf(w, "%s (#%d)\n", u.Name, u.ID)
	fmt.Fprintf(w, "Image: %s\n", image)

	t := uitable.New()
	t.MaxColWidth = 60
	t.Wrap = true
	for _, d := range details {
		t.AddRow(d.Label+":", d.Value)
	}
	fmt.Fprintln(w, t)
}

func renderAccount(w io.Writer, acc services.Account) {
	if !acc.LoggedIn {
		fmt.Fprintln(w, "Not logged in")
		return
	}

	t := uitable.New()
	t.AddRow("Identifier:", orDash(acc.Identifier))
	if acc.LoggedInAt.IsZero() {
		t.AddRow("Logged in at:", "-")
	} else {
		t.AddRow("Logged in at:", acc.LoggedInAt.Local().Format(time.DateTime))
	}

	switch {
	case acc.Token.Opaque:
		t.AddRow("Token:", "opaque")
	case acc.Token.ExpiresAt.IsZero():
		t.AddRow("Token:", "no expiry")
	case acc.Token.Expired(time.Now()):
		t.AddRow("Token:", "expired at "+acc.Token.ExpiresAt.Local().Format(time.DateTime))
	default:
		t.AddRow("Token:", "valid until "+acc.Token.ExpiresAt.Local().Format(time.DateTime))
	}
	if acc.Token.Subject != "" {
		t.AddRow("Subject:", acc.Token.Subject)
	}
	fmt.Fprintln(w, t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
