package railcsv

import (
	"encoding/csv"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/railscout/railscout/pkg/timetable"
	"github.com/railscout/railscout/pkg/util"
)

// Record is one row of a timetable CSV. Everything is kept as strings so a
// single malformed row fails its own validation instead of aborting the whole
// unmarshal.
type Record struct {
	ConnectionID     string `csv:"Route ID"`
	DepartureCity    string `csv:"Departure City"`
	ArrivalCity      string `csv:"Arrival City"`
	DepartureTime    string `csv:"Departure Time"`
	ArrivalTime      string `csv:"Arrival Time"`
	TrainType        string `csv:"Train Type"`
	OperatingDays    string `csv:"Days of Operation"`
	FirstClassPrice  string `csv:"First Class ticket rate (in euro)"`
	SecondClassPrice string `csv:"Second Class ticket rate (in euro)"`
}

var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// ParseFile reads a timetable CSV into scheduled connections. Malformed rows
// are logged and skipped; the importer treats a bad source row as missing
// data, never as a fatal error.
func ParseFile(reader io.Reader) ([]timetable.ScheduledConnection, error) {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var records []Record
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, err
	}

	validationPool := pool.NewWithResults[*timetable.ScheduledConnection]()
	validationPool.WithMaxGoroutines(8)

	for _, record := range records {
		record := record
		validationPool.Go(func() *timetable.ScheduledConnection {
			connection, err := record.ToConnection()
			if err != "" {
				log.Warn().
					Str("id", record.ConnectionID).
					Str("reason", err).
					Msg("Skipping timetable row")
				return nil
			}

			return connection
		})
	}

	results := validationPool.Wait()
	util.InPlaceFilter(&results, func(connection *timetable.ScheduledConnection) bool {
		return connection != nil
	})

	connections := make([]timetable.ScheduledConnection, 0, len(results))
	for _, connection := range results {
		connections = append(connections, *connection)
	}

	// The validation pool finishes in whatever order the goroutines do;
	// sorting keeps index builds identical between imports of the same file.
	sort.Slice(connections, func(i, j int) bool {
		if connections[i].ConnectionID != connections[j].ConnectionID {
			return connections[i].ConnectionID < connections[j].ConnectionID
		}
		if connections[i].DepartureCity != connections[j].DepartureCity {
			return connections[i].DepartureCity < connections[j].DepartureCity
		}
		return connections[i].DepartureTime < connections[j].DepartureTime
	})

	return connections, nil
}

// ToConnection validates and converts one row. The returned string names the
// first failing field, or is empty on success.
func (record *Record) ToConnection() (*timetable.ScheduledConnection, string) {
	departureCity := strings.TrimSpace(record.DepartureCity)
	arrivalCity := strings.TrimSpace(record.ArrivalCity)

	if departureCity == "" {
		return nil, "departure city"
	}
	if arrivalCity == "" {
		return nil, "arrival city"
	}

	departureTime := strings.TrimSpace(record.DepartureTime)
	if !clockPattern.MatchString(departureTime) {
		return nil, "departure time"
	}

	// Arrival may carry a next-day marker like "06:30 (+1d)"; the clock
	// wrap already models a single midnight crossing so the marker is
	// informational only.
	arrivalTime := strings.TrimSpace(record.ArrivalTime)
	if parenthesis := strings.Index(arrivalTime, "("); parenthesis >= 0 {
		arrivalTime = strings.TrimSpace(arrivalTime[:parenthesis])
	}
	if !clockPattern.MatchString(arrivalTime) {
		return nil, "arrival time"
	}

	firstClassPrice, err := strconv.Atoi(strings.TrimSpace(record.FirstClassPrice))
	if err != nil || firstClassPrice < 0 {
		return nil, "first class price"
	}

	secondClassPrice, err := strconv.Atoi(strings.TrimSpace(record.SecondClassPrice))
	if err != nil || secondClassPrice < 0 {
		return nil, "second class price"
	}

	now := time.Now().Format(time.RFC3339)

	return &timetable.ScheduledConnection{
		ConnectionID:         strings.TrimSpace(record.ConnectionID),
		DepartureCity:        departureCity,
		ArrivalCity:          arrivalCity,
		DepartureTime:        padClock(departureTime),
		ArrivalTime:          padClock(arrivalTime),
		TrainType:            strings.TrimSpace(record.TrainType),
		OperatingDays:        ParseOperatingDays(record.OperatingDays),
		FirstClassPrice:      firstClassPrice,
		SecondClassPrice:     secondClassPrice,
		CreationDateTime:     now,
		ModificationDateTime: now,
	}, ""
}

// ParseOperatingDays understands the day grammars the source timetables use:
// "Daily", positional "MTWTFSS" masks, ranges like "Fri-Sun" (wrapping
// through the week end), and comma separated day names. Unrecognized tokens
// are dropped.
func ParseOperatingDays(raw string) []string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if strings.EqualFold(value, "Daily") {
		return append([]string{}, timetable.WeekdayCodes...)
	}

	if isDayMask(value) {
		return timetable.ExpandDayMask(value)
	}

	if strings.Contains(value, "-") && !strings.Contains(value, ",") {
		parts := strings.SplitN(value, "-", 2)

		start, startOk := timetable.CanonicalWeekday(parts[0])
		end, endOk := timetable.CanonicalWeekday(parts[1])

		if startOk && endOk {
			return weekdayRange(start, end)
		}
	}

	return timetable.CanonicalWeekdays(strings.Split(value, ","))
}

// A mask has exactly seven positions, each either the day's letter or '-'.
// Ranges like "Fri-Sun" are also seven characters but fail the positional
// check.
func isDayMask(value string) bool {
	const letters = "MTWTFSS"

	if len(value) != 7 {
		return false
	}

	for index := 0; index < 7; index++ {
		if value[index] != letters[index] && value[index] != '-' {
			return false
		}
	}

	return true
}

func weekdayRange(start string, end string) []string {
	startIndex := weekdayIndex(start)
	endIndex := weekdayIndex(end)

	days := []string{start}
	for index := startIndex; index != endIndex; {
		index = (index + 1) % 7
		days = append(days, timetable.WeekdayCodes[index])
	}

	return days
}

func weekdayIndex(code string) int {
	for index, known := range timetable.WeekdayCodes {
		if known == code {
			return index
		}
	}

	return 0
}

// Clocks are compared lexicographically downstream, so "9:30" has to become
// "09:30" on the way in.
func padClock(hhmm string) string {
	if len(hhmm) == 4 {
		return "0" + hhmm
	}

	return hhmm
}
