// Package main is the qrshare command: it encodes task form data into a
// shareable link, renders the link as a styled QR image, and decodes
// incoming links back into form data.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/taskbeam/taskbeam/internal/config"
	"github.com/taskbeam/taskbeam/internal/share"
)

const helpText = `qrshare - Encode task data into a QR share link

USAGE:
    qrshare -task TEXT [OPTIONS]          Build a share link and QR image
    qrshare -decode LINK                  Decode a share link

OPTIONS:
    -task TEXT      Task text (required for encoding)
    -project NAME   Project name
    -org NAME       Organization name
    -due DATE       Due date (YYYY-MM-DD)
    -out FILE       Write the QR PNG here (default: share.png)
    -size N         QR image size in pixels (default: 512)
    -base URL       Share base URL (default: from config)
    -no-copy        Skip copying the link to the clipboard
    -decode LINK    Decode a share link instead of encoding
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		taskText string
		project  string
		org      string
		due      string
		out      string
		size     int
		base     string
		noCopy   bool
		decode   string
	)

	flag.StringVar(&taskText, "task", "", "Task text")
	flag.StringVar(&project, "project", "", "Project name")
	flag.StringVar(&org, "org", "", "Organization name")
	flag.StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	flag.StringVar(&out, "out", "share.png", "Output PNG path")
	flag.IntVar(&size, "size", share.DefaultQRSize, "QR image size in pixels")
	flag.StringVar(&base, "base", "", "Share base URL")
	flag.BoolVar(&noCopy, "no-copy", false, "Skip clipboard copy")
	flag.StringVar(&decode, "decode", "", "Decode a share link")

	flag.Usage = func() {
		fmt.Print(helpText)
	}
	flag.Parse()

	if decode != "" {
		return runDecode(decode)
	}
	return runEncode(taskText, project, org, due, out, size, base, noCopy)
}

func runDecode(link string) error {
	p, err := share.ParseLink(link)
	if err != nil {
		// Malformed links are expected input, not a crash.
		fmt.Fprintf(os.Stderr, "Warning: could not read share link: %v\n", err)
		return nil
	}

	fmt.Printf("task:         %s\n", p.Task)
	if p.Project != "" {
		fmt.Printf("project:      %s\n", p.Project)
	}
	if p.Organization != "" {
		fmt.Printf("organization: %s\n", p.Organization)
	}
	if p.DueDate != "" {
		fmt.Printf("due:          %s\n", p.DueDate)
	}
	return nil
}

func runEncode(taskText, project, org, due, out string, size int, base string, noCopy bool) error {
	if taskText == "" {
		fmt.Print(helpText)
		return fmt.Errorf("-task is required")
	}

	if base == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		base = cfg.Share.BaseURL
	}

	link, err := share.Link(base, share.Payload{
		Task:         taskText,
		Project:      project,
		Organization: org,
		DueDate:      due,
	})
	if err != nil {
		return err
	}

	if err := share.WriteQR(link, out, size); err != nil {
		return err
	}

	fmt.Println(link)
	fmt.Printf("QR image written to %s\n", out)

	if !noCopy {
		if err := clipboard.WriteAll(link); err != nil {
			// Fallback copy path: the link is already printed above for
			// manual selection.
			fmt.Fprintf(os.Stderr, "Warning: clipboard unavailable (%v); copy the link above manually\n", err)
		} else {
			fmt.Println("Link copied to clipboard")
		}
	}

	return nil
}
