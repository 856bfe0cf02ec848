package tui

import "github.com/charmbracelet/bubbles/textinput"

// masterModel serves both master-password screens: first-time setup (two
// inputs and an irreversibility warning) and unlock (a single input).
type masterModel struct {
	configured bool
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newMasterModel(configured bool) masterModel {
	count := 2
	if configured {
		count = 1
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Placeholder = "master password"
	inputs[0].Focus()
	if !configured {
		inputs[1].Placeholder = "repeat master password"
	}

	return masterModel{configured: configured, inputs: inputs}
}

func (m masterModel) View() string {
	if m.configured {
		out := "Вход в хранилище\n\n"
		out += "Мастер-пароль: [" + m.inputs[0].View() + "]\n\n"
		if m.submitting {
			out += "[Разблокировать...]\n\n"
		} else {
			out += "[Разблокировать]\n\n"
		}
		out += helpStyle.Render("enter подтвердить  ctrl+c выход")
		return out
	}

	out := "Создание мастер-пароля\n\n"
	out += warnStyle.Render("Мастер-пароль нельзя изменить или восстановить.") + "\n"
	out += warnStyle.Render("Потеря мастер-пароля означает потерю всех записей навсегда.") + "\n\n"
	out += "Мастер-пароль:  [" + m.inputs[0].View() + "]\n"
	out += "Повтор пароля:  [" + m.inputs[1].View() + "]\n\n"
	if m.submitting {
		out += "[Создать...]\n\n"
	} else {
		out += "[Создать]\n\n"
	}
	out += helpStyle.Render("tab следующее поле  enter подтвердить  ctrl+c выход")
	return out
}
