package tui

import "github.com/charmbracelet/bubbles/textinput"

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	labels := []string{"name", "login", "password", "repeat password"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = label
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
	}
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].EchoCharacter = '*'
	inputs[0].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) View() string {
	out := "Регистрация\n\n"
	out += "Имя:            [" + m.inputs[0].View() + "]\n"
	out += "Логин:          [" + m.inputs[1].View() + "]\n"
	out += "Пароль:         [" + m.inputs[2].View() + "]\n"
	out += "Повтор пароля:  [" + m.inputs[3].View() + "]\n\n"
	if m.submitting {
		out += "[Зарегистрироваться...]\n\n"
	} else {
		out += "[Зарегистрироваться]\n\n"
	}
	out += helpStyle.Render("esc назад  tab следующее поле  enter подтвердить")
	return out
}
