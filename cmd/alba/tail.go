package main

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/AlbaFramework/alba/pkg/inspector"
)

func tailCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Stream navigation events from a running inspector",
		Long: `Connects to an application's inspector endpoint and prints every
navigation event as it is committed. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:6060", "Inspector address (host:port)")

	return cmd
}

func runTail(addr string) error {
	wsURL := url.URL{Scheme: "ws", Host: addr, Path: "/events"}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return fmt.Errorf("connect to inspector at %s: %w", addr, err)
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	messages := make(chan inspector.EventMessage)
	errs := make(chan error, 1)
	go func() {
		for {
			var msg inspector.EventMessage
			if err := conn.ReadJSON(&msg); err != nil {
				errs <- err
				return
			}
			messages <- msg
		}
	}()

	fmt.Printf("Tailing navigation events from %s\n", addr)
	for {
		select {
		case msg := <-messages:
			printEvent(msg)
		case err := <-errs:
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				fmt.Println("Inspector closed the stream")
				return nil
			}
			return fmt.Errorf("read event: %w", err)
		case <-interrupt:
			return nil
		}
	}
}

func printEvent(msg inspector.EventMessage) {
	switch msg.Type {
	case "replace":
		fmt.Printf("%-8s %s -> %s (index %d)\n", msg.Type, msg.PreviousPath, msg.Path, msg.Index)
	case "pop":
		if msg.Result != nil {
			fmt.Printf("%-8s %s (index %d) result=%v\n", msg.Type, msg.Path, msg.Index, msg.Result)
			return
		}
		fmt.Printf("%-8s %s (index %d)\n", msg.Type, msg.Path, msg.Index)
	default:
		if msg.ID != "" {
			fmt.Printf("%-8s %s (index %d, id %s)\n", msg.Type, msg.Path, msg.Index, msg.ID)
			return
		}
		fmt.Printf("%-8s %s (index %d)\n", msg.Type, msg.Path, msg.Index)
	}
}
