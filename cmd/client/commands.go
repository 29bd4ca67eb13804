package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/models"
)

var (
	errUsage          = errors.New("usage: client [flags] login|list|get|create|update|delete [args]")
	errUnknownCommand = errors.New("unknown command")
)

// command runs one client operation with its positional operands.
type command struct {
	args  []string
	usage string
	run   func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error)
}

var commands = map[string]command{
	"login": {
		args:  []string{"id", "password"},
		usage: "login <id> <password>",
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return a.Login(ctx, models.Credentials{ID: id, Password: args[1]})
		},
	},
	"list": {
		usage: "list",
		run: func(ctx context.Context, a adapter.ServerAdapter, _ []string) (any, error) {
			return a.ListUsers(ctx)
		},
	},
	"get": {
		args:  []string{"id"},
		usage: "get <id>",
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return a.GetUser(ctx, id)
		},
	},
	"create": {
		args:  []string{"id", "name", "role", "password"},
		usage: "create <id> <name> <role> <password>",
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			user, err := parseUser(args)
			if err != nil {
				return nil, err
			}
			return a.CreateUser(ctx, user)
		},
	},
	"update": {
		args:  []string{"id", "name", "role", "password"},
		usage: "update <id> <name> <role> <password>",
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			user, err := parseUser(args)
			if err != nil {
				return nil, err
			}
			return a.UpdateUser(ctx, user.ID, user)
		},
	},
	"delete": {
		args:  []string{"id"},
		usage: "delete <id>",
		run: func(ctx context.Context, a adapter.ServerAdapter, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return struct{}{}, a.DeleteUser(ctx, id)
		},
	},
}

// run executes args[0] with the remaining operands and prints its result as
// indented JSON to out.
func run(ctx context.Context, a adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, found := commands[args[0]]
	if !found {
		return fmt.Errorf("%w %q: %w", errUnknownCommand, args[0], errUsage)
	}
	if len(args)-1 != len(cmd.args) {
		return fmt.Errorf("usage: client [flags] %s", cmd.usage)
	}

	result, err := cmd.run(ctx, a, args[1:])
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return int32(id), nil
}

func parseUser(args []string) (models.UserForCreate, error) {
	id, err := parseID(args[0])
	if err != nil {
		return models.UserForCreate{}, err
	}

	return models.UserForCreate{
		ID:       id,
		Name:     args[1],
		Role:     models.Role(args[2]),
		Password: args[3],
	}, nil
}
