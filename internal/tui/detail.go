package tui

import (
	"fmt"

	"github.com/mshevelev/vault-hub/models"
)

type detailModel struct {
	entry    models.VaultEntry
	payload  models.SecretPayload
	revealed bool
	status   string
}

func valueOrDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func (m detailModel) View() string {
	if !m.revealed {
		return "Расшифровка...\n\n" + helpStyle.Render("esc назад")
	}

	out := fmt.Sprintf("%s\n\n", m.payload.Label)
	out += fmt.Sprintf("Логин:  %s\n", valueOrDash(m.payload.Username))
	out += "Секрет: ••••••••\n"
	out += fmt.Sprintf("URL:    %s\n", valueOrDash(m.payload.URL))
	out += fmt.Sprintf("Создан: %s\n", m.entry.CreatedAt.Format("02.01.2006 15:04"))

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c копир. секрет  u копир. логин  esc назад")
	return out
}
