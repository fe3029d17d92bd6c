// Package source reads and validates the valvelet XML data files.
//
// Four files live in the data directory: balance.xml, fixed_costs.xml,
// income.xml, and scenarios.xml. Parsing is strict: records are built into
// typed values and validated before anything reaches the engine, so the
// simulation only ever sees well-formed input.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"valvelet/internal/model"
)

const (
	balanceFile    = "balance.xml"
	fixedCostsFile = "fixed_costs.xml"
	incomeFile     = "income.xml"
	scenariosFile  = "scenarios.xml"
)

const dateLayout = "2006-01-02"

// Loader reads the four data files from one directory.
type Loader struct {
	dir string
	log *logrus.Logger
}

// New returns a loader for the given data directory.
func New(dir string, log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{dir: dir, log: log}
}

// Load reads, parses, and validates all four data files.
func (l *Loader) Load() (model.Inputs, error) {
	bal, err := l.loadBalance()
	if err != nil {
		return model.Inputs{}, err
	}
	fixed, err := l.loadFixedCosts()
	if err != nil {
		return model.Inputs{}, err
	}
	incomes, err := l.loadIncome()
	if err != nil {
		return model.Inputs{}, err
	}
	scenarios, err := l.loadScenarios()
	if err != nil {
		return model.Inputs{}, err
	}

	in := model.Inputs{
		Balance:    bal,
		Incomes:    incomes,
		FixedCosts: fixed,
		Scenarios:  scenarios,
	}
	if err := in.Validate(); err != nil {
		return model.Inputs{}, err
	}

	l.log.WithFields(logrus.Fields{
		"balance":     bal.Amount,
		"as_of":       bal.AsOf.Format(dateLayout),
		"incomes":     len(incomes),
		"fixed_costs": len(fixed),
		"scenarios":   len(scenarios),
	}).Debug("data files loaded")

	return in, nil
}

func (l *Loader) open(name string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filepath.Join(l.dir, name)); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return doc, nil
}

// loadBalance parses balance.xml:
//
//	<balance><current as-of="2026-02-19">500000</current></balance>
func (l *Loader) loadBalance() (model.BalanceSnapshot, error) {
	doc, err := l.open(balanceFile)
	if err != nil {
		return model.BalanceSnapshot{}, err
	}

	cur := doc.FindElement("//balance/current")
	if cur == nil {
		return model.BalanceSnapshot{}, malformedFile(balanceFile, "missing <current> element")
	}

	amount, err := parseAmount(cur.Text())
	if err != nil {
		return model.BalanceSnapshot{}, malformedFile(balanceFile, "bad amount: %v", err)
	}
	asOf, err := parseDate(cur.SelectAttrValue("as-of", ""))
	if err != nil {
		return model.BalanceSnapshot{}, malformedFile(balanceFile, "bad as-of attribute: %v", err)
	}

	return model.BalanceSnapshot{Amount: amount, AsOf: asOf}, nil
}

// loadFixedCosts parses fixed_costs.xml: a flat list of <cost> records with
// <name> and a monthly <amount>.
func (l *Loader) loadFixedCosts() ([]model.FixedCost, error) {
	doc, err := l.open(fixedCostsFile)
	if err != nil {
		return nil, err
	}

	var costs []model.FixedCost
	for _, el := range doc.FindElements("//fixed-costs/cost") {
		name := childText(el, "name")
		amount, err := parseAmount(childText(el, "amount"))
		if err != nil {
			return nil, malformedFile(fixedCostsFile, "cost %q: %v", name, err)
		}
		costs = append(costs, model.FixedCost{Name: name, Amount: amount})
	}
	return costs, nil
}

// loadIncome parses income.xml: <entry frequency="..."> records with
// <source>, <amount>, <from>, and an optional <to>.
func (l *Loader) loadIncome() ([]model.IncomeEntry, error) {
	doc, err := l.open(incomeFile)
	if err != nil {
		return nil, err
	}

	var entries []model.IncomeEntry
	for _, el := range doc.FindElements("//income/entry") {
		src := childText(el, "source")

		freq, err := model.ParseFrequency(el.SelectAttrValue("frequency", ""))
		if err != nil {
			return nil, malformedFile(incomeFile, "entry %q: %v", src, err)
		}
		amount, err := parseAmount(childText(el, "amount"))
		if err != nil {
			return nil, malformedFile(incomeFile, "entry %q: %v", src, err)
		}
		from, err := parseDate(childText(el, "from"))
		if err != nil {
			return nil, malformedFile(incomeFile, "entry %q: bad from date: %v", src, err)
		}

		entry := model.IncomeEntry{
			Source:    src,
			Amount:    amount,
			Frequency: freq,
			From:      from,
		}
		if toEl := el.FindElement("to"); toEl != nil {
			to, err := parseDate(toEl.Text())
			if err != nil {
				return nil, malformedFile(incomeFile, "entry %q: bad to date: %v", src, err)
			}
			entry.To = &to
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadScenarios parses scenarios.xml: <scenario> records each holding a
// <name> and an ordered list of <activity> records.
func (l *Loader) loadScenarios() ([]model.Scenario, error) {
	doc, err := l.open(scenariosFile)
	if err != nil {
		return nil, err
	}

	var scenarios []model.Scenario
	for _, scnEl := range doc.FindElements("//scenarios/scenario") {
		scn := model.Scenario{Name: childText(scnEl, "name")}

		for _, actEl := range scnEl.FindElements("activity") {
			name := childText(actEl, "name")
			cost, err := parseAmount(childText(actEl, "cost"))
			if err != nil {
				return nil, malformedFile(scenariosFile, "activity %q: %v", name, err)
			}
			dpw, err := parseAmount(childText(actEl, "days-per-week"))
			if err != nil {
				return nil, malformedFile(scenariosFile, "activity %q: bad days-per-week: %v", name, err)
			}
			scn.Activities = append(scn.Activities, model.Activity{
				Name:        name,
				Cost:        cost,
				DaysPerWeek: dpw,
			})
		}
		scenarios = append(scenarios, scn)
	}
	return scenarios, nil
}

func childText(el *etree.Element, name string) string {
	child := el.FindElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return d, nil
}

func malformedFile(file, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", model.ErrMalformedInput, file, fmt.Sprintf(format, args...))
}
