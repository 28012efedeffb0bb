package ping

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"aping/internal/models"
)

var (
	// Linux/macOS: "64 bytes from 8.8.8.8: icmp_seq=1 ttl=118 time=12.3 ms"
	posixTimeRE = regexp.MustCompile(`time=([0-9.]+)\s*ms`)
	// Windows: "Reply from 8.8.8.8: bytes=32 time=15ms TTL=118"
	windowsTimeRE = regexp.MustCompile(`time=([0-9]+)\s*ms`)
)

// subMillisecondRTT is what a reply faster than one millisecond counts as
const subMillisecondRTT = 1

// posixParser reads iputils/BSD ping output
type posixParser struct{}

// Parse implements models.OutputParser
func (posixParser) Parse(output string) (string, int, bool, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "seq=") {
			continue
		}
		line = strings.TrimSpace(line)

		matches := posixTimeRE.FindStringSubmatch(line)
		if len(matches) < 2 {
			return line, 0, false, true
		}
		rtt, err := strconv.ParseFloat(matches[1], 64)
		if err != nil {
			return line, 0, false, true
		}
		return line, millis(rtt), true, true
	}
	return "", 0, false, false
}

// windowsParser reads the Windows ping.exe output
type windowsParser struct{}

// Parse implements models.OutputParser
func (windowsParser) Parse(output string) (string, int, bool, bool) {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "time<1ms") {
			return strings.TrimSpace(line), subMillisecondRTT, true, true
		}
		if !strings.Contains(line, "time=") {
			continue
		}
		line = strings.TrimSpace(line)

		matches := windowsTimeRE.FindStringSubmatch(line)
		if len(matches) < 2 {
			return line, 0, false, true
		}
		rtt, err := strconv.Atoi(matches[1])
		if err != nil {
			return line, 0, false, true
		}
		return line, rtt, true, true
	}
	return "", 0, false, false
}

// millis rounds a fractional RTT to whole milliseconds. Anything under one
// millisecond counts as one.
func millis(rtt float64) int {
	if rtt < 1 {
		return subMillisecondRTT
	}
	return int(math.Round(rtt))
}

// ParserFor returns the output parser for the given GOOS
func ParserFor(goos string) models.OutputParser {
	if goos == "windows" {
		return windowsParser{}
	}
	return posixParser{}
}

// CommandArgs returns the ping arguments for a single echo request
func CommandArgs(goos, target string) []string {
	if goos == "windows" {
		return []string{"-n", "1", target}
	}
	return []string{"-c", "1", target}
}
