package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/bizmatch/internal/domain/model"
)

var (
	amountRe = regexp.MustCompile(`\$?(\d[\d,]*)(\+?)`)
	hoursRe  = regexp.MustCompile(`\d+`)
	headerRe = regexp.MustCompile(`^[A-Z\s&():]+:$`)
)

// ParseMoneyRange reads strings such as "$0-$100", "$500-$5,000/month",
// "$3,000-$100,000+/month" or "$1,000+". A single amount yields Min == Max.
func ParseMoneyRange(s string) (model.MoneyRange, error) {
	matches := amountRe.FindAllStringSubmatch(s, 2)
	if len(matches) == 0 {
		return model.MoneyRange{}, fmt.Errorf("%w: no amount in %q", ErrInvalidRange, s)
	}
	amounts := make([]int, 0, len(matches))
	open := false
	for _, m := range matches {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return model.MoneyRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
		}
		amounts = append(amounts, n)
		open = m[2] == "+"
	}
	r := model.MoneyRange{Min: amounts[0], Max: amounts[len(amounts)-1], OpenEnded: open}
	if r.Min > r.Max {
		return model.MoneyRange{}, fmt.Errorf("%w: %q has min above max", ErrInvalidRange, s)
	}
	return r, nil
}

// ParseHourRange reads strings such as "10-40 hours/week".
func ParseHourRange(s string) (model.HourRange, error) {
	nums := hoursRe.FindAllString(s, 2)
	if len(nums) == 0 {
		return model.HourRange{}, fmt.Errorf("%w: no hours in %q", ErrInvalidRange, s)
	}
	lo, _ := strconv.Atoi(nums[0])
	hi := lo
	if len(nums) == 2 {
		hi, _ = strconv.Atoi(nums[1])
	}
	if lo > hi {
		return model.HourRange{}, fmt.Errorf("%w: %q has min above max", ErrInvalidRange, s)
	}
	return model.HourRange{Min: lo, Max: hi}, nil
}

// Sections splits a detailed description into blank-line separated blocks.
// A block whose first line is an upper-case label ending in ':' becomes a
// headed section; lines starting with '•' become bullets.
func Sections(text string) []model.Section {
	blocks := strings.Split(text, "\n\n")
	out := make([]model.Section, 0, len(blocks))
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		var sec model.Section
		if headerRe.MatchString(lines[0]) {
			sec.Header = strings.TrimSuffix(lines[0], ":")
			lines = lines[1:]
		}
		var paras []string
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == "":
			case sec.Header != "" && strings.HasPrefix(trimmed, "•"):
				sec.Bullets = append(sec.Bullets, bullet(strings.TrimSpace(strings.TrimPrefix(trimmed, "•"))))
			default:
				paras = append(paras, line)
			}
		}
		sec.Text = strings.Join(paras, "\n")
		if sec.Header == "" && sec.Text == "" {
			continue
		}
		out = append(out, sec)
	}
	return out
}

func bullet(s string) model.Bullet {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return model.Bullet{Text: s}
	}
	return model.Bullet{Label: label, Text: strings.TrimSpace(rest)}
}
