package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mshevelev/vault-hub/models"
)

type formModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormModel() formModel {
	labels := []string{"название", "логин", "секрет", "url"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = label
		inputs[i].CharLimit = 512
		inputs[i].Width = 50
	}
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[0].Focus()

	return formModel{inputs: inputs}
}

func (m formModel) toPayload() models.SecretPayload {
	return models.SecretPayload{
		Label:    m.inputs[0].Value(),
		Username: m.inputs[1].Value(),
		Secret:   m.inputs[2].Value(),
		URL:      m.inputs[3].Value(),
	}
}

func (m formModel) View() string {
	out := "Новая запись\n\n"
	out += "Название: [" + m.inputs[0].View() + "]\n"
	out += "Логин:    [" + m.inputs[1].View() + "]\n"
	out += "Секрет:   [" + m.inputs[2].View() + "]\n"
	out += "URL:      [" + m.inputs[3].View() + "]\n\n"
	if m.submitting {
		out += "[Сохранить...]\n\n"
	} else {
		out += "[Сохранить]\n\n"
	}
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}
