package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/mikeymoomin/FastGEO/pkg/page"
)

// fillMissing prompts for required page metadata the definition left out.
// Only fields the builder would reject are asked for; everything present is
// left alone.
func fillMissing(model *page.Model) error {
	if strings.TrimSpace(model.Title) == "" {
		prompt := &survey.Input{
			Message: "Page title:",
			Help:    "Used for the article <h1> and the JSON-LD headline.",
		}
		if err := survey.AskOne(prompt, &model.Title, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("prompt for title: %w", err)
		}
	}

	if _, ok := model.Meta["description"]; !ok {
		var description string
		prompt := &survey.Input{
			Message: "Page description (optional):",
			Help:    "Included in the JSON-LD payload and the llms.txt export.",
		}
		if err := survey.AskOne(prompt, &description); err != nil {
			return fmt.Errorf("prompt for description: %w", err)
		}
		if description != "" {
			if model.Meta == nil {
				model.Meta = make(map[string]any, 1)
			}
			model.Meta["description"] = description
		}
	}

	for i, section := range model.Sections {
		if strings.TrimSpace(section.Heading) != "" {
			continue
		}
		prompt := &survey.Input{
			Message: fmt.Sprintf("Heading for section %d:", i+1),
		}
		if err := survey.AskOne(prompt, &model.Sections[i].Heading, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("prompt for section heading: %w", err)
		}
	}

	return nil
}
