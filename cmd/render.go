package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"lsaudio/services"
	"lsaudio/types"
)

var sizeSuffixes = []string{"B", "kiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// humanSize renders a byte count base-1024 with one decimal place below 10
// units. Ported from github.com/dustin/go-humanize (MIT licensed).
func humanSize(size uint64) string {
	if size < 10 {
		return fmt.Sprintf("%d B", size)
	}
	e := math.Floor(math.Log(float64(size)) / math.Log(1024))
	suffix := sizeSuffixes[int(e)]
	val := math.Floor(float64(size)/math.Pow(1024, e)*10+0.5) / 10
	if val < 10 {
		return fmt.Sprintf("%.1f %s", val, suffix)
	}
	return fmt.Sprintf("%.0f %s", val, suffix)
}

func joinValues(values types.MultiString) string {
	return strings.Join(values, "/")
}

func yearCell(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

// trackCell renders "number" or "number/total"; a track without a number is
// empty no matter what total says.
func trackCell(track types.Track) string {
	if track.Empty() {
		return ""
	}
	cell := strconv.FormatUint(uint64(*track.Number), 10)
	if track.Total != nil {
		cell += "/" + strconv.FormatUint(uint64(*track.Total), 10)
	}
	return cell
}

// renderTable renders entries as a left-aligned table with three-space
// gutters, or nothing at all when there are no entries.
func renderTable(entries []types.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tTITLE\tARTIST\tALBUM\tYEAR\tTRACK\tGENRE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			humanSize(e.Size),
			joinValues(e.Title),
			joinValues(e.Artist),
			joinValues(e.Album),
			yearCell(e.Year),
			trackCell(e.Track),
			joinValues(e.Genre),
		)
	}
	w.Flush()
	return buf.String()
}

// mergeResults splits file results from directory results, merging the
// entries of all explicitly named files into one cross-file list re-sorted
// under the active sort specification.
func mergeResults(results []types.Info, keys []types.SortBy, reverse bool) ([]types.Entry, []types.Info) {
	var merged []types.Entry
	var dirs []types.Info
	for _, info := range results {
		if info.PathType == types.PathTypeFile {
			merged = append(merged, info.Entries...)
		} else {
			dirs = append(dirs, info)
		}
	}
	services.SortEntries(merged, keys, reverse)
	return merged, dirs
}

// renderResults renders the whole result sequence as tables. A single
// result prints bare; multiple results print merged files first, then each
// directory under a "path:" heading.
func renderResults(results []types.Info, keys []types.SortBy, reverse bool) string {
	if len(results) == 1 {
		return renderTable(results[0].Entries)
	}

	merged, dirs := mergeResults(results, keys, reverse)
	var tables []string
	if len(merged) > 0 {
		tables = append(tables, renderTable(merged))
	}
	for _, dir := range dirs {
		tables = append(tables, dir.Path+":\n"+renderTable(dir.Entries))
	}
	return strings.Join(tables, "\n")
}

// encodeResults encodes the result sequence as JSON with the same merge
// semantics as the table output.
func encodeResults(results []types.Info, keys []types.SortBy, reverse bool) (string, error) {
	if len(results) == 1 {
		out, err := json.Marshal(results[0].Entries)
		return string(out), err
	}

	merged, dirs := mergeResults(results, keys, reverse)
	var values []interface{}
	if len(merged) > 0 {
		values = append(values, merged)
	}
	for _, dir := range dirs {
		values = append(values, map[string]interface{}{
			"path":   dir.Path,
			"values": dir.Entries,
		})
	}

	if len(values) == 1 {
		out, err := json.Marshal(values[0])
		return string(out), err
	}
	out, err := json.Marshal(values)
	return string(out), err
}
