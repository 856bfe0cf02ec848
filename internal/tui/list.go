package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/mshevelev/vault-hub/models"
)

type listModel struct {
	entries []models.VaultEntry
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.VaultEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.VaultEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m listModel) View() string {
	header := "Vault Hub"
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.entries) == 0 {
		out += "Нет записей\n"
	} else {
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s[#] запись от %s\n", cursor, entry.CreatedAt.Format("02.01.2006 15:04"))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n новая  s синхр.  l заблокировать  q выход  enter открыть")
	return out
}
