package cli

import (
	"fmt"
	"strings"

	"cardwallet/internal/models"
)

// promptCard walks the user through the card form. Existing values are shown
// as defaults and kept when the input is empty. Only the name is required;
// the store itself does not enforce it.
func (c *Cli) promptCard(card *models.Card) error {
	name, err := c.promptField("Name", card.Name)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	card.Name = name

	fields := []struct {
		label string
		value *string
	}{
		{"Company", &card.Company},
		{"Title", &card.Title},
		{"Mobile", &card.Mobile},
		{"Tel", &card.Tel},
		{"Email", &card.Email},
		{"Website", &card.Website},
		{"Address", &card.Address},
	}

	for _, f := range fields {
		value, err := c.promptField(f.label, *f.value)
		if err != nil {
			return err
		}
		*f.value = value
	}

	group, err := c.promptGroup(card.Group)
	if err != nil {
		return err
	}
	card.Group = group

	return nil
}

// promptField asks for one value, keeping the default on empty input.
func (c *Cli) promptField(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if input == "" {
		return current, nil
	}
	return input, nil
}

// promptGroup asks for the relationship group, accepting the enum name or
// the Korean label. Empty input keeps the current group.
func (c *Cli) promptGroup(current models.Group) (models.Group, error) {
	if !current.Valid() {
		current = models.GroupOther
	}

	options := make([]string, 0, len(models.Groups()))
	for _, g := range models.Groups() {
		options = append(options, fmt.Sprintf("%s(%s)", g, g.Label()))
	}

	prompt := fmt.Sprintf("Group %s [%s]: ", strings.Join(options, " "), current)
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return current, fmt.Errorf("failed to read group: %w", err)
	}
	if input == "" {
		return current, nil
	}

	group, ok := models.ParseGroup(strings.ToUpper(input))
	if !ok {
		// Korean labels are not upper-cased away.
		group, ok = models.ParseGroup(input)
	}
	if !ok {
		return current, fmt.Errorf("unknown group: %s", input)
	}

	return group, nil
}
