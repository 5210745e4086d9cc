// relayctl prints the live state of a running relay.
//
//	relayctl stats
//	relayctl connections [-type client|driver|admin]
//	relayctl sessions [-limit N]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"realtime-relay/domain"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "relayctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: relayctl stats|connections|sessions [flags]")
	}

	client := newAPIClient(cfg.Addr, cfg.Timeout)
	view := renderer{out: out, colours: cfg.Colours}
	ctx := context.Background()

	switch args[0] {
	case "stats":
		stats, err := client.Stats(ctx)
		if err != nil {
			return err
		}
		view.Stats(stats)
	case "connections":
		flags := flag.NewFlagSet("connections", flag.ContinueOnError)
		typ := flags.String("type", "", "client, driver or admin")
		if err = flags.Parse(args[1:]); err != nil {
			return err
		}
		filter, err := domain.ParseActorType(*typ)
		if err != nil {
			return err
		}
		list, err := client.Connections(ctx, filter)
		if err != nil {
			return err
		}
		view.Connections(list)
	case "sessions":
		flags := flag.NewFlagSet("sessions", flag.ContinueOnError)
		limit := flags.Int("limit", 0, "number of journal entries, newest first")
		if err = flags.Parse(args[1:]); err != nil {
			return err
		}
		list, err := client.Sessions(ctx, *limit)
		if err != nil {
			return err
		}
		view.Sessions(list)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
