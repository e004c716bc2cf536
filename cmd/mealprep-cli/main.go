package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mealStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepEnteringPreference
	stepEnteringGoal
	stepEnteringCuisine
	stepEnteringMealCount
	stepGenerating
	stepShowingPlan
)

type meal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	PrepTime    string   `json:"prep_time"`
	Calories    int      `json:"calories"`
	MealType    string   `json:"meal_type"`
}

type groceryList struct {
	Produce  []string `json:"produce"`
	Grains   []string `json:"grains"`
	Proteins []string `json:"proteins"`
	Dairy    []string `json:"dairy"`
	Pantry   []string `json:"pantry"`
}

type plan struct {
	ID          string      `json:"_id"`
	Meals       []meal      `json:"meals"`
	GroceryList groceryList `json:"grocery_list"`
	Date        string      `json:"date"`
}

type model struct {
	step         step
	email        string
	password     string
	authToken    string
	userName     string
	preference   string
	goal         string
	cuisine      string
	mealCount    int
	currentInput string
	plan         *plan
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	token string
	name  string
}
type planGeneratedMsg struct{ plan plan }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func serverURL() string {
	if url := os.Getenv("MEALPREP_SERVER"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://localhost:5000"
}

func initialModel() model {
	return model{step: stepEnteringEmail}
}

func (m model) Init() tea.Cmd {
	return nil
}

func loginUser(email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL()+"/api/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s", serverURL())}
		}
		defer resp.Body.Close()

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				Name string `json:"name"`
			} `json:"user"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || !body.Success {
			if body.Message != "" {
				return errMsg{fmt.Errorf("%s", body.Message)}
			}
			return errMsg{fmt.Errorf("login failed")}
		}

		return loginSuccessMsg{token: body.Token, name: body.User.Name}
	}
}

func generatePlan(token, preference, goal, cuisine string, count int) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 15 * time.Second}

		payload := map[string]interface{}{
			"dietaryPreference": preference,
			"nutritionalGoal":   goal,
			"preferredCuisine":  cuisine,
			"numberOfMeals":     count,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL()+"/api/meals/generate", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-auth-token", token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s", serverURL())}
		}
		defer resp.Body.Close()

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Data    plan   `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || !body.Success {
			if body.Message != "" {
				return errMsg{fmt.Errorf("%s", body.Message)}
			}
			return errMsg{fmt.Errorf("plan generation failed")}
		}

		return planGeneratedMsg{plan: body.Data}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		case tea.KeyBackspace:
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil
		case tea.KeyRunes, tea.KeySpace:
			if m.step == stepShowingPlan {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += string(msg.Runes)
			return m, nil
		}

	case loginSuccessMsg:
		m.authToken = msg.token
		m.userName = msg.name
		m.message = ""
		m.step = stepEnteringPreference
		return m, nil

	case planGeneratedMsg:
		p := msg.plan
		m.plan = &p
		m.message = ""
		m.step = stepShowingPlan
		return m, nil

	case errMsg:
		m.message = msg.Error()
		// Back to the start of whichever flow failed
		if m.authToken == "" {
			m.step = stepEnteringEmail
			m.currentInput = ""
		} else {
			m.step = stepEnteringMealCount
			m.currentInput = ""
		}
		return m, nil
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.currentInput)

	switch m.step {
	case stepEnteringEmail:
		if input == "" {
			return m, nil
		}
		m.email = input
		m.currentInput = ""
		m.step = stepEnteringPassword
		return m, nil

	case stepEnteringPassword:
		if input == "" {
			return m, nil
		}
		m.password = input
		m.currentInput = ""
		m.step = stepLoggingIn
		return m, loginUser(m.email, m.password)

	case stepEnteringPreference:
		if input == "" {
			input = "omnivore"
		}
		m.preference = input
		m.currentInput = ""
		m.step = stepEnteringGoal
		return m, nil

	case stepEnteringGoal:
		if input == "" {
			input = "maintenance"
		}
		m.goal = input
		m.currentInput = ""
		m.step = stepEnteringCuisine
		return m, nil

	case stepEnteringCuisine:
		if input == "" {
			input = "any"
		}
		m.cuisine = input
		m.currentInput = ""
		m.step = stepEnteringMealCount
		return m, nil

	case stepEnteringMealCount:
		count, err := strconv.Atoi(input)
		if err != nil || count <= 0 {
			m.message = "enter a positive number of meals"
			m.currentInput = ""
			return m, nil
		}
		m.mealCount = count
		m.currentInput = ""
		m.message = ""
		m.step = stepGenerating
		return m, generatePlan(m.authToken, m.preference, m.goal, m.cuisine, m.mealCount)

	case stepShowingPlan:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Meal Prep Planner") + "\n")

	if m.message != "" {
		b.WriteString(errorStyle.Render("✗ "+m.message) + "\n\n")
	}

	switch m.step {
	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: ") + inputStyle.Render(m.currentInput+"_") + "\n")

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: ") + inputStyle.Render(strings.Repeat("*", len(m.currentInput))+"_") + "\n")

	case stepLoggingIn:
		b.WriteString("Logging in...\n")

	case stepEnteringPreference:
		b.WriteString(successStyle.Render("✓ Logged in as "+m.userName) + "\n\n")
		b.WriteString(promptStyle.Render("Dietary preference (omnivore): ") + inputStyle.Render(m.currentInput+"_") + "\n")

	case stepEnteringGoal:
		b.WriteString(promptStyle.Render("Nutritional goal (maintenance): ") + inputStyle.Render(m.currentInput+"_") + "\n")

	case stepEnteringCuisine:
		b.WriteString(promptStyle.Render("Preferred cuisine (any): ") + inputStyle.Render(m.currentInput+"_") + "\n")

	case stepEnteringMealCount:
		b.WriteString(promptStyle.Render("Number of meals: ") + inputStyle.Render(m.currentInput+"_") + "\n")

	case stepGenerating:
		b.WriteString("Generating your meal plan...\n")

	case stepShowingPlan:
		b.WriteString(m.renderPlan())
		b.WriteString("\nPress any key to exit.\n")
	}

	b.WriteString("\n(esc to quit)\n")
	return b.String()
}

func (m model) renderPlan() string {
	if m.plan == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("✓ Plan generated (%d meals)", len(m.plan.Meals))) + "\n\n")

	for i, meal := range m.plan.Meals {
		b.WriteString(mealStyle.Render(fmt.Sprintf("%d. [%s] %s — %s, %d kcal", i+1, meal.MealType, meal.Name, meal.PrepTime, meal.Calories)) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Grocery list") + "\n")
	writeCategory := func(name string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(categoryStyle.Render(name+":") + " " + strings.Join(items, ", ") + "\n")
	}
	writeCategory("produce", m.plan.GroceryList.Produce)
	writeCategory("grains", m.plan.GroceryList.Grains)
	writeCategory("proteins", m.plan.GroceryList.Proteins)
	writeCategory("dairy", m.plan.GroceryList.Dairy)
	writeCategory("pantry", m.plan.GroceryList.Pantry)

	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
