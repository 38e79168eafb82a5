package service

import (
	"context"
	"fmt"
	"io"

	"WeRadiate.thermoq/internal/config"
	"WeRadiate.thermoq/internal/models"
	"WeRadiate.thermoq/internal/query"
	"WeRadiate.thermoq/internal/repository"
)

// PasswordFunc obtains the basic-auth password for a user.
type PasswordFunc func(user string) (string, error)

// QueryService drives one invocation end to end: assemble the
// statement, collect credentials, dispatch, and copy the response
// body to the output stream untouched.
type QueryService struct {
	cfg      config.Config
	repo     repository.Repository
	password PasswordFunc
	out      io.Writer
	errw     io.Writer
}

// NewQueryService creates a new QueryService.
func NewQueryService(cfg config.Config, repo repository.Repository, password PasswordFunc, out, errw io.Writer) *QueryService {
	return &QueryService{
		cfg:      cfg,
		repo:     repo,
		password: password,
		out:      out,
		errw:     errw,
	}
}

// Run performs the single query request.
func (s *QueryService) Run(ctx context.Context) error {
	statement := query.Build(s.cfg)

	pass, err := s.password(s.cfg.User)
	if err != nil {
		return err
	}

	if s.cfg.Verbose {
		s.echo(statement)
	}

	body, err := s.repo.Query(ctx, models.QueryRequest{
		Statement: statement,
		User:      s.cfg.User,
		Password:  pass,
	})
	if err != nil {
		return err
	}
	defer body.Close()

	if _, err := io.Copy(s.out, body); err != nil {
		return models.NewCLIError(models.ErrorCodeTransport, "error reading response body", err, 1)
	}
	return nil
}

// echo prints the fully assembled request before dispatch. Plain text
// on the error stream, for operator eyes only; the password is never
// part of it.
func (s *QueryService) echo(statement string) {
	fmt.Fprintf(s.errw, "GET %s/query?pretty=%t (user %s)\n", s.cfg.ServerURL(), s.cfg.Pretty, s.cfg.User)
	fmt.Fprintf(s.errw, "  db = %s\n", s.cfg.Database)
	fmt.Fprintf(s.errw, "  q  = %s\n", statement)
}
