package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/nutriapp/nutricli/internal/client/models"
)

// Profile prints the stored profile together with its derived daily targets.
func (a *App) Profile(ctx context.Context) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	p, err := a.profileService.Me(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Name: %s", p.Name))
	printlnFn(fmt.Sprintf("Age: %d", p.Age))
	printlnFn(fmt.Sprintf("Weight: %.1f kg", p.WeightKg.Float64()))
	printlnFn(fmt.Sprintf("Height: %.0f cm", p.HeightCm.Float64()))
	printlnFn(fmt.Sprintf("Gender: %s", p.Gender))
	printlnFn(fmt.Sprintf("Activity: %s", p.ActivityLevel))
	printlnFn(fmt.Sprintf("Objective: %s", p.Objective))
	printlnFn(fmt.Sprintf("Daily targets: %.0f kcal, P %.0f g, C %.0f g, F %.0f g",
		p.RequiredCalories.Float64(),
		p.RequiredProteinG.Float64(),
		p.RequiredCarbsG.Float64(),
		p.RequiredFatG.Float64()))
	return nil
}

// Onboard collects the initial profile and submits it. Daily targets are
// computed by the backend from the submitted values.
func (a *App) Onboard(ctx context.Context) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	in, err := a.readProfileInput()
	if err != nil {
		return err
	}

	p, err := a.profileService.Create(ctx, in)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProfile) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Profile created. Daily target: %.0f kcal.", p.RequiredCalories.Float64()))
	return nil
}

// EditProfile collects replacement values and updates the profile.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	in, err := a.readProfileInput()
	if err != nil {
		return err
	}

	p, err := a.profileService.Edit(ctx, in)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProfile) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Profile updated. Daily target: %.0f kcal.", p.RequiredCalories.Float64()))
	return nil
}

// readProfileInput prompts for the profile fields one by one. Values are
// parsed leniently here; real validation happens in ProfileInput.Validate
// before anything is submitted.
func (a *App) readProfileInput() (models.ProfileInput, error) {
	var in models.ProfileInput

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return in, err
	}
	in.Name = name

	age, err := a.promptInt("Enter age")
	if err != nil {
		return in, err
	}
	in.Age = age

	weight, err := a.promptFloat("Enter weight (kg)")
	if err != nil {
		return in, err
	}
	in.WeightKg = weight

	height, err := a.promptFloat("Enter height (cm)")
	if err != nil {
		return in, err
	}
	in.HeightCm = height

	gender, err := getSimpleText(a.reader, "Enter gender (male/female)", os.Stdout)
	if err != nil {
		return in, err
	}
	in.Gender = gender

	activity, err := a.promptInt("Enter activity level (1 sedentary .. 5 very intense)")
	if err != nil {
		return in, err
	}
	in.ActivityLevelID = activity

	objective, err := a.promptInt("Enter objective (1 gain muscle, 2 lose fat, 3 maintain)")
	if err != nil {
		return in, err
	}
	in.ObjectiveID = objective

	return in, nil
}

func (a *App) promptInt(prompt string) (int, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(s)
	return n, nil
}

func (a *App) promptFloat(prompt string) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f, nil
}
