// ccsctl inspects and exports the specimen catalog without running the
// server.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"Conecyl/internal/auth"
	"Conecyl/internal/ccs"
	"Conecyl/internal/config"
	"Conecyl/internal/export"
	"Conecyl/internal/mirror"
	"Conecyl/internal/repo"
	"Conecyl/internal/report"
)

const usage = `usage: ccsctl <command> [flags]

commands:
  list          print identifiers (-gui, -database tag)
  show NAME     print one specimen as JSON
  export        write the catalog (-format xlsx|csv, -o file)
  report NAME   write a PDF datasheet (-o file)
  hash-password print a bcrypt hash of -password
  token         print an admin token signed with TOKEN_KEY (-subject, -ttl)
  sync          copy the catalog into DATABASE_URL
`

var errUsage = errors.New("invalid usage")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	stdout := bufio.NewWriterSize(os.Stdout, 4096)
	err := run(os.Args[1], os.Args[2:], stdout)
	stdout.Flush()
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func run(cmd string, args []string, out io.Writer) error {
	cat := ccs.Default()
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)

	switch cmd {
	case "list":
		gui := fs.Bool("gui", false, "Only identifiers shown in the GUI.")
		db := fs.String("database", "", "Only identifiers with this provenance tag.")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		names := cat.Names()
		switch {
		case *gui:
			names = cat.DisplayList()
		case *db != "":
			names = cat.ByDatabase(*db)
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil

	case "show":
		if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
			return errUsage
		}
		s, err := cat.Get(fs.Arg(0))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)

	case "export":
		format := fs.String("format", "xlsx", "Output format: xlsx or csv.")
		path := fs.String("o", "", "Output file. Defaults to stdout.")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		return withOutput(*path, out, func(w io.Writer) error {
			switch *format {
			case "xlsx":
				return export.WriteXLSX(w, cat)
			case "csv":
				return export.WriteCSV(w, cat)
			}
			return fmt.Errorf("unknown format %q", *format)
		})

	case "report":
		path := fs.String("o", "", "Output file. Defaults to NAME.pdf.")
		if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
			return errUsage
		}
		name := fs.Arg(0)
		s, err := cat.Get(name)
		if err != nil {
			return err
		}
		if *path == "" {
			*path = name + ".pdf"
		}
		return withOutput(*path, out, func(w io.Writer) error {
			return report.Write(w, report.Input{Name: name, AliasOf: cat.Aliases()[name], Specimen: s})
		})

	case "hash-password":
		pw := fs.String("password", "", "Password to hash.")
		if err := fs.Parse(args); err != nil || *pw == "" {
			return errUsage
		}
		hash, err := auth.HashPassword(*pw)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hash)
		return nil

	case "token":
		subject := fs.String("subject", "admin", "Token subject.")
		ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime.")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		token, _, err := auth.IssueToken([]byte(cfg.TokenKey), *subject, *ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, token)
		return nil

	case "sync":
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
		db, err := repo.InitDB(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		res, err := mirror.Sync(ctx, repo.NewPostgresSpecimenDB(db), cat)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d specimens written (%d aliases)\n", res.Written, res.Aliases)
		return nil
	}
	return errUsage
}

// withOutput runs fn against the named file, or out when path is empty.
func withOutput(path string, out io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(out)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
