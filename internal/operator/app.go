// Package operator implements the provisioning commands for the operator
// credential store: changing a secret and adding an operator.
package operator

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/flagx"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/shared"
)

// Provisioner is the subset of the auth service the commands need.
type Provisioner interface {
	SetPassword(ctx context.Context, userName, password string) error
	AddOperator(ctx context.Context, userName, displayName, password string) (*models.User, error)
}

var ErrUsage = errors.New("usage: operator passwd -u <username> | operator add -u <username> -n <display name>")

type App struct {
	svc Provisioner
	out io.Writer
}

func NewApp(svc Provisioner, out io.Writer) *App {
	return &App{svc: svc, out: out}
}

type commandFlags struct {
	userName    string
	displayName string
}

func parseCommandFlags(args []string) (commandFlags, error) {
	var cf commandFlags
	fs := flag.NewFlagSet("operator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cf.userName, "u", "", "operator username")
	fs.StringVar(&cf.displayName, "n", "", "operator display name")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-u", "-n"})); err != nil {
		return cf, err
	}
	cf.userName = strings.TrimSpace(cf.userName)
	return cf, nil
}

// Run executes the subcommand named by args[0]. Flags not owned by the
// command (database settings and such) are ignored here.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	cf, err := parseCommandFlags(args[1:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if cf.userName == "" {
		return ErrUsage
	}

	switch args[0] {
	case "passwd":
		return a.passwd(ctx, cf)
	case "add":
		return a.add(ctx, cf)
	default:
		return ErrUsage
	}
}

func (a *App) passwd(ctx context.Context, cf commandFlags) error {
	pw, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	if err := a.svc.SetPassword(ctx, cf.userName, string(pw)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("operator %q does not exist", cf.userName)
		}
		return err
	}

	fmt.Fprintf(a.out, "Password updated for %s\n", cf.userName)
	return nil
}

func (a *App) add(ctx context.Context, cf commandFlags) error {
	pw, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	u, err := a.svc.AddOperator(ctx, cf.userName, cf.displayName, string(pw))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Operator %s created with id %d\n", u.UserName, u.ID)
	return nil
}
