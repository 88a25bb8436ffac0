package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readPasswordLine reads a single password line, for scripted use.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}

// promptPassword asks for a password twice without echoing it.
func promptPassword() (string, error) {
	var password, confirm string
	if err := survey.AskOne(&survey.Password{Message: "Password:"}, &password, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("survey failed: %w", err)
	}
	if err := survey.AskOne(&survey.Password{Message: "Confirm password:"}, &confirm); err != nil {
		return "", fmt.Errorf("survey failed: %w", err)
	}
	if password != confirm {
		return "", errPasswordMismatch
	}
	return password, nil
}

func promptUsername(def string) (string, error) {
	var username string
	prompt := &survey.Input{Message: "Username:", Default: def}
	if err := survey.AskOne(prompt, &username, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("survey failed: %w", err)
	}
	return username, nil
}
