// Package format holds the pure display helpers used by every dashboard
// renderer: relative ages, address abbreviation, metric strings and links.
package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	JustNow     = "Just now"
	InvalidDate = "Invalid Date"

	// CalendarLayout is the short en-US calendar date used once a check is a
	// day old or more.
	CalendarLayout = "1/2/2006"

	msPerMinute = int64(60_000)
	msPerHour   = int64(3_600_000)
)

// Layouts without an explicit zone are read in the display location, except
// for a bare date which is UTC.
var zonedLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999Z0700"}
var localLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04", "2006-01-02 15:04:05"}

// ParseTimestamp reads an ISO-8601 check timestamp.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unrecognized layout", s)
}

// RelativeTime renders how long ago a check ran. Minutes and hours are floor
// divisions of the elapsed milliseconds; a day or more falls back to the
// calendar date in loc. Future timestamps read as "Just now".
func RelativeTime(timestamp string, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, err := ParseTimestamp(timestamp, loc)
	if err != nil {
		return InvalidDate
	}

	diffMs := now.Sub(t).Milliseconds()
	if diffMs < msPerMinute {
		return JustNow
	}
	if mins := diffMs / msPerMinute; mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	if hours := diffMs / msPerHour; hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return t.In(loc).Format(CalendarLayout)
}

// TruncateAddress keeps the first 6 and last 4 characters. Inputs shorter
// than 10 characters overlap rather than being rejected.
func TruncateAddress(addr string) string {
	r := []rune(addr)
	head := r[:min(6, len(r))]
	tail := r[max(0, len(r)-4):]
	return string(head) + "..." + string(tail)
}

// DisplayAddress returns the EIP-55 checksummed form of a hex address and the
// raw string for anything else.
func DisplayAddress(addr string) string {
	if !common.IsHexAddress(addr) {
		return addr
	}
	return common.HexToAddress(addr).Hex()
}

func ETH(v float64, decimals int) string {
	return ToFixed(v, decimals) + " ETH"
}

func Percent(v float64, decimals int) string {
	return ToFixed(v, decimals) + "%"
}

// Taxes renders "buy% / sell%" with one decimal, as shown in a row header.
func Taxes(buy, sell float64) string {
	return Percent(buy, 1) + " / " + Percent(sell, 1)
}

func Millis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "ms"
}

// ToFixed rounds the exact binary value of v to the given number of decimals,
// breaking exact ties away from zero (strconv breaks them to even).
func ToFixed(v float64, decimals int) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}

	tie := strconv.FormatFloat(v, 'f', decimals+1, 64)
	if !strings.HasSuffix(tie, "5") {
		return s
	}
	exact, _, err := big.ParseFloat(tie, 10, 2048, big.ToNearestEven)
	if err != nil || exact.Cmp(new(big.Float).SetFloat64(v)) != 0 {
		return s
	}
	return roundTieUp(tie)
}

// roundTieUp drops a trailing 5 and increments the magnitude of what is left.
func roundTieUp(tie string) string {
	neg := strings.HasPrefix(tie, "-")
	digits := []byte(strings.TrimPrefix(tie, "-"))
	digits = digits[:len(digits)-1]
	if digits[len(digits)-1] == '.' {
		digits = digits[:len(digits)-1]
	}

	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] == '.' {
			continue
		}
		if digits[i] < '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// ---- Outbound links ----

const (
	DefaultExplorerURL = "https://etherscan.io/address/"
	DefaultChartURL    = "https://dexscreener.com/ethereum/"
)

// Links builds the two per-record hyperlinks by plain interpolation.
type Links struct {
	ExplorerBase string
	ChartBase    string
}

func DefaultLinks() Links {
	return Links{ExplorerBase: DefaultExplorerURL, ChartBase: DefaultChartURL}
}

func (l Links) Explorer(token string) string {
	return l.ExplorerBase + token
}

func (l Links) Chart(pair string) string {
	return l.ChartBase + pair
}
