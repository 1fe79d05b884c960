package rate

import (
	"errors"

	"github.com/manifoldco/promptui"

	"tableflip.dev/mhc/pkg/rating"
)

// Terminal prompts on the controlling terminal until a whole number is given.
type Terminal struct{}

// Ask implements Prompter.
func (Terminal) Ask(label string) (rating.Rating, error) {
	validate := func(input string) error {
		if _, err := rating.Parse(input); err != nil {
			return errors.New("invalid input")
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return rating.Parse(result)
}
