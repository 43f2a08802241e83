package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwulff/glucodash/internal/chat"
	"github.com/jwulff/glucodash/internal/health"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat [patient-id]",
		Short: "Ask questions about a patient's diabetes data",
		Long: "Ask about A1C trends, glucose patterns, medication compliance, appointments, weight or alerts. " +
			"With --ask the answer is printed and the command exits; otherwise questions are read from stdin until 'exit'.",
		Args: cobra.MaximumNArgs(1),
		Run:  runChat,
	}
	cmd.Flags().StringP("ask", "q", "", "Ask a single question")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	question, _ := cmd.Flags().GetString("ask")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d := loadDataset()
	p := resolvePatient(cmd.Context(), s, d, args)

	chatCtx, err := d.ChatContext(p.ID)
	if err != nil {
		exitErr("load chat context", err)
	}
	session, err := chat.NewSession(chat.NewMatcher(), chatCtx, time.Now())
	if err != nil {
		exitErr("start chat", err)
	}

	if question != "" {
		if _, err := ask(cmd.Context(), session, question, cfg.ChatDelay); err != nil {
			exitErr("chat", err)
		}
		if formatFlag == "json" {
			printJSON(cmd, session.Messages())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), lastMessage(session).Text)
		return
	}

	if err := converse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session, cfg.ChatDelay); err != nil {
		exitErr("chat", err)
	}
	if formatFlag == "json" {
		printJSON(cmd, session.Messages())
	}
}

// ask answers question after delay, standing in for the assistant typing.
func ask(ctx context.Context, session *chat.Session, question string, delay time.Duration) (health.ChatMessage, error) {
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return health.ChatMessage{}, ctx.Err()
		}
	}
	return session.Ask(question, time.Now())
}

func lastMessage(session *chat.Session) health.ChatMessage {
	msgs := session.Messages()
	return msgs[len(msgs)-1]
}

// converse runs the interactive loop until exit, quit or end of input. Blank
// lines are ignored.
func converse(ctx context.Context, in io.Reader, out io.Writer, session *chat.Session, delay time.Duration) error {
	text := formatFlag == "text"
	if text {
		fmt.Fprintf(out, "assistant: %s\n", lastMessage(session).Text)
	}

	scanner := bufio.NewScanner(in)
	for {
		if text {
			fmt.Fprint(out, "\n> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}

		answer, err := ask(ctx, session, line, delay)
		if errors.Is(err, chat.ErrEmptyMessage) {
			continue
		}
		if err != nil {
			return err
		}
		if text {
			fmt.Fprintf(out, "assistant: %s\n", answer.Text)
		}
	}
	if text {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
