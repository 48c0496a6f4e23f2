// Package menu is the interactive console front end. It reads numbered choices
// and drives an ops.Session, reporting every failure as text and carrying on.
package menu

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hpungsan/msgpipe/internal/errors"
	"github.com/hpungsan/msgpipe/internal/logger"
	"github.com/hpungsan/msgpipe/internal/ops"
)

// Menu options
const (
	OptionSend = iota + 1
	OptionSearch
	OptionUpdate
	OptionDelete
	OptionPrintAll
	OptionExit
)

// errInputClosed stops the loop when input ends or can no longer be read.
var errInputClosed = stderrors.New("input closed")

// Menu runs the numbered menu against one session.
type Menu struct {
	sess *ops.Session
	in   *bufio.Reader
	out  io.Writer
	log  *slog.Logger

	// readErr is the first read failure other than end of input
	readErr error
}

// New creates a menu reading lines from in and writing to out.
// out should be the same writer the session prints recorded messages to.
func New(sess *ops.Session, in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	if log == nil {
		log = logger.Discard()
	}
	return &Menu{
		sess: sess,
		in:   bufio.NewReader(in),
		out:  out,
		log:  log,
	}
}

// Run loops until the exit option or end of input, then prints the farewell.
// End of input is a normal exit. The returned error is the I/O error that
// stopped the reader early, if any.
func (m *Menu) Run() error {
	for {
		m.showMenu()

		line, err := m.readLine()
		if err != nil {
			break
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if choice == OptionExit {
			break
		}

		if err := m.dispatch(choice); err != nil {
			if stderrors.Is(err, errInputClosed) {
				break
			}
			m.report(err)
		}
	}

	fmt.Fprintln(m.out, "Arrivederci")
	return m.readErr
}

func (m *Menu) dispatch(choice int) error {
	switch choice {
	case OptionSend:
		return m.send()
	case OptionSearch:
		return m.search()
	case OptionUpdate:
		return m.update()
	case OptionDelete:
		return m.deleteRecord()
	case OptionPrintAll:
		return ops.PrintAll(m.sess)
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		return nil
	}
}

func (m *Menu) showMenu() {
	fmt.Fprintln(m.out, "Please choose an option:")
	fmt.Fprintln(m.out, "1. Create and send a message")
	fmt.Fprintln(m.out, "2. Search for messages by word")
	fmt.Fprintln(m.out, "3. Update a message by index")
	fmt.Fprintln(m.out, "4. Delete a message by index")
	fmt.Fprintln(m.out, "5. Print all messages")
	fmt.Fprintln(m.out, "6. Exit")
}

func (m *Menu) send() error {
	fmt.Fprintf(m.out, "Please enter your message content (max %d characters):\n", m.sess.MaxChars())
	text, err := m.readLine()
	if err != nil {
		return err
	}

	_, err = ops.Send(m.sess, ops.SendInput{Text: text})
	return err
}

func (m *Menu) search() error {
	fmt.Fprintln(m.out, "Please enter a word to search for:")
	word, err := m.readLine()
	if err != nil {
		return err
	}

	output, err := ops.Search(m.sess, ops.SearchInput{Word: word})
	if err != nil {
		return err
	}

	if output.Total == 0 {
		fmt.Fprintf(m.out, "No messages found with the word %s\n", output.Word)
		return nil
	}
	fmt.Fprintf(m.out, "%d messages found with the word %s\n", output.Total, output.Word)
	for _, item := range output.Items {
		fmt.Fprintln(m.out, item)
	}
	return nil
}

func (m *Menu) update() error {
	fmt.Fprintln(m.out, "Please enter an index to update:")
	index, err := m.readIndex()
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Please enter a new content for the message (max %d characters):\n", m.sess.MaxChars())
	text, err := m.readLine()
	if err != nil {
		return err
	}

	if _, err := ops.Update(m.sess, ops.UpdateInput{Index: index, Text: text}); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Message updated successfully")
	return nil
}

func (m *Menu) deleteRecord() error {
	fmt.Fprintln(m.out, "Please enter an index to delete:")
	index, err := m.readIndex()
	if err != nil {
		return err
	}

	if _, err := ops.Delete(m.sess, ops.DeleteInput{Index: index}); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Message deleted successfully")
	return nil
}

// report prints the human-readable part of err.
func (m *Menu) report(err error) {
	m.log.Debug("operation failed", "error", err)
	fmt.Fprintln(m.out, errors.Message(err))
}

// readLine returns the next input line without its line ending, or
// errInputClosed at end of input. Lines have no length limit; oversized
// text is left for message validation to reject.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			m.readErr = err
			return "", errInputClosed
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readIndex reads a line and parses it as a record index.
func (m *Menu) readIndex() (int, error) {
	line, err := m.readLine()
	if err != nil {
		return 0, err
	}
	index, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, errors.NewInvalidArgument(fmt.Sprintf("index must be a whole number, got %q", line))
	}
	return index, nil
}
