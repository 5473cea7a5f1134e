package videos

import (
	"fmt"
	"strconv"
	"time"
)

const (
	tenThousand = 10000
	// DefaultTimeZone is where Bilibili publishes; pubdates render in it unless configured otherwise.
	DefaultTimeZone = "Asia/Shanghai"
	pubdateLayout   = "2006-01-02 15:04:05"
)

// FormatCount renders n as-is below ten thousand and as "x.x万" from there on.
func FormatCount(n int64) string {
	if n >= tenThousand {
		return fmt.Sprintf("%.1f万", float64(n)/tenThousand)
	}
	return strconv.FormatInt(n, 10)
}

// FormatDuration renders seconds as MM:SS, or HH:MM:SS once there is at least
// one hour. The hour field grows past two digits instead of wrapping.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatPubdate renders a unix timestamp in loc, falling back to DefaultLocation.
func FormatPubdate(unix int64, loc *time.Location) string {
	if loc == nil {
		loc = DefaultLocation()
	}
	return time.Unix(unix, 0).In(loc).Format(pubdateLayout)
}

// DefaultLocation loads DefaultTimeZone. Hosts without zoneinfo get a fixed UTC+8 zone.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimeZone)
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}
