// Package console is the terminal side of the player: clearing the screen,
// the banner, reading the stream URL and printing it as a QR code.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Prompt is shown before reading the stream URL.
const Prompt = "Enter the archive.org video URL: "

// ErrNoInput is returned by ReadURL when stdin ends before a URL is entered.
var ErrNoInput = errors.New("no URL entered")

const clearSequence = "\033[H\033[2J"

// Clear clears the terminal behind w.
func Clear(w io.Writer) {
	if runtime.GOOS == "windows" {
		cmd := exec.Command("cmd", "/c", "cls")
		cmd.Stdout = w
		if err := cmd.Run(); err == nil {
			return
		}
	}
	fmt.Fprint(w, clearSequence)
}

// Banner prints the program title and author credit.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "==============================")
	fmt.Fprintln(w, "       Archive Streamer")
	fmt.Fprintln(w, "        Made by Cr0mb")
	fmt.Fprintln(w, "==============================")
	fmt.Fprintln(w)
}

// ReadURL prompts on w and reads one line from r, without its line ending.
// A final line without a newline is accepted.
func ReadURL(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, Prompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading URL: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PrintQR writes uri as a compact terminal QR code.
func PrintQR(w io.Writer, uri string) error {
	q, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	fmt.Fprintln(w, "Scan to open this stream on another device:")
	fmt.Fprint(w, q.ToSmallString(false))
	return nil
}
