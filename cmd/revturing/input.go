package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// promptLine asks for one line of free text, re-prompting on empty input.
func promptLine(r *bufio.Reader, label string) string {
	for {
		fmt.Printf("\n%s\n> ", label)
		line, err := r.ReadString('\n')
		if err != nil {
			return strings.TrimSpace(line)
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
		fmt.Println("Please enter something.")
	}
}

// chooseOption presents numbered options and returns the chosen index.
func chooseOption(r *bufio.Reader, label string, options []string) int {
	fmt.Printf("\n%s\n", label)
	for i, opt := range options {
		fmt.Printf("%d. %s\n", i+1, opt)
	}
	for {
		fmt.Print("\nEnter your choice (number): ")
		line, _ := r.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1
		}
		fmt.Println("Invalid choice. Please try again.")
	}
}
