// Package main is a terminal front end for the volunteer registration
// wizard. It walks through the details, availability and location steps
// against a running API, keeping progress in the server-side draft.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"anndann/client"
	"anndann/models"
	"anndann/services/draft"
	"anndann/services/wizard"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CLI flags
var (
	apiURL    string
	sessionID string
	latitude  float64
	longitude float64
	verbose   bool
)

func init() {
	flag.StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the AnnDann API")
	flag.StringVar(&sessionID, "session", "", "Draft session id to resume (a new one is created when empty)")
	flag.Float64Var(&latitude, "lat", math.NaN(), "Device latitude for \"use current location\"")
	flag.Float64Var(&longitude, "lon", math.NaN(), "Device longitude for \"use current location\"")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
}

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(apiURL)
	w := &wizardCLI{
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		draft:   draft.NewSession(c.Drafts(), sessionID, logger),
		api:     c,
		locator: flagLocator{lat: latitude, lon: longitude},
		logger:  logger,
	}
	fmt.Fprintf(w.out, "Session: %s (pass -session to resume)\n", sessionID)
	if err := w.run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// flagLocator reports the position given on the command line.
type flagLocator struct {
	lat, lon float64
}

func (l flagLocator) CurrentPosition(context.Context) (float64, float64, error) {
	if math.IsNaN(l.lat) || math.IsNaN(l.lon) {
		return 0, 0, &wizard.GeolocationError{Code: wizard.GeolocationPositionUnavailable}
	}
	return l.lat, l.lon, nil
}

var errInputClosed = errors.New("input closed")

type wizardCLI struct {
	in      *bufio.Scanner
	out     io.Writer
	draft   wizard.DraftStore
	api     *client.Client
	locator wizard.Locator
	logger  *zap.Logger
}

func (w *wizardCLI) run(ctx context.Context) error {
	if err := w.details(ctx); err != nil {
		return err
	}
	if err := w.availability(ctx); err != nil {
		return err
	}
	return w.location(ctx)
}

func (w *wizardCLI) prompt(label string) (string, error) {
	fmt.Fprintf(w.out, "%s: ", label)
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(w.in.Text()), nil
}

func (w *wizardCLI) details(ctx context.Context) error {
	fmt.Fprintln(w.out, "== Personal details ==")
	step := wizard.NewDetailsStep(ctx, w.draft)
	for {
		for _, f := range wizard.DetailFields {
			label := f.Label()
			if v := step.Value(f); v != "" {
				label = fmt.Sprintf("%s [%s]", label, v)
			}
			v, err := w.prompt(label)
			if err != nil {
				return err
			}
			if v == "" {
				continue
			}
			if err := step.Set(ctx, f, v); err != nil {
				w.logger.Warn("failed to save draft field", zap.String("field", string(f)), zap.Error(err))
			}
		}
		if step.Next() {
			return nil
		}
		fmt.Fprintln(w.out, step.Message())
		step.Acknowledge()
	}
}

func (w *wizardCLI) availability(ctx context.Context) error {
	fmt.Fprintln(w.out, "== Availability ==")
	step := wizard.NewAvailabilityStep(ctx, w.draft, w.api, w.logger)
	for {
		slot, err := w.prompt(fmt.Sprintf("Time slot (Morning, Afternoon, Night) [%s]", step.TimeSlot()))
		if err != nil {
			return err
		}
		if slot != "" {
			if err := step.SelectTimeSlot(parseTimeSlot(slot)); err != nil {
				fmt.Fprintln(w.out, err)
				continue
			}
		}

		days, err := w.prompt(fmt.Sprintf("Toggle days (M T W Th F Sa Su, weekdays, weekend) %v", step.Days()))
		if err != nil {
			return err
		}
		for _, tok := range strings.FieldsFunc(days, func(r rune) bool { return r == ',' || r == ' ' }) {
			switch strings.ToLower(tok) {
			case "weekdays":
				step.ToggleWeekdays()
			case "weekend":
				step.ToggleWeekend()
			default:
				if err := step.ToggleDay(models.Day(tok)); err != nil {
					fmt.Fprintln(w.out, err)
				}
			}
		}

		if err := step.Next(ctx); err != nil {
			return err
		}
		fmt.Fprintln(w.out, step.Message())
		if step.State() == wizard.StateSuccess {
			fmt.Fprintf(w.out, "Volunteer id: %s\n", step.Record().ID)
			fmt.Fprintf(w.out, "Continue at %s\n", step.Acknowledge())
			return nil
		}
		step.Acknowledge()
	}
}

func (w *wizardCLI) location(ctx context.Context) error {
	fmt.Fprintln(w.out, "== Location ==")
	step := wizard.NewLocationStep(w.api, w.locator, w.logger)
	for {
		q, err := w.prompt("Search a location (\"here\" for current position, empty to skip)")
		if err != nil {
			return err
		}
		switch q {
		case "":
			return nil
		case "here":
			if err := step.UseCurrentPosition(ctx); err != nil {
				fmt.Fprintln(w.out, step.Message())
				step.Acknowledge()
				continue
			}
		default:
			results := step.Search(ctx, q)
			if len(results) == 0 {
				fmt.Fprintln(w.out, "No results.")
				continue
			}
			for i, p := range results {
				fmt.Fprintf(w.out, "  %d) %s\n", i+1, p.DisplayName)
			}
			choice, err := w.prompt("Pick a result")
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(choice)
			if err != nil {
				continue
			}
			if _, err := step.Select(n - 1); err != nil {
				fmt.Fprintln(w.out, err)
				continue
			}
		}
		sel := step.Selection()
		fmt.Fprintf(w.out, "Selected: %s (%.5f, %.5f)\n", sel.Address, sel.Latitude, sel.Longitude)
		return nil
	}
}

// parseTimeSlot matches slot case-insensitively against the known slots.
func parseTimeSlot(slot string) models.TimeSlot {
	for _, s := range models.TimeSlots {
		if strings.EqualFold(slot, string(s)) {
			return s
		}
	}
	return models.TimeSlot(slot)
}
