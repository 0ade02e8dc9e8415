package docs2pdf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-docs2pdf/internal/dateutil"
)

// versionPattern matches vMAJOR.MINOR.PATCH markers in rendered content.
var versionPattern = regexp.MustCompile(`v(\d+\.\d+\.\d+)`)

// LatestVersion returns the highest version marker found in content, or
// "" when none appear. Components compare numerically, so v1.10.0 beats
// v1.9.9.
func LatestVersion(content string) string {
	var best string
	for _, m := range versionPattern.FindAllStringSubmatch(content, -1) {
		best = maxVersion(best, m[1])
	}
	return best
}

// maxVersion picks the numerically higher of two dotted versions. The
// empty string loses to anything.
func maxVersion(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case versionLess(a, b):
		return b
	default:
		return a
	}
}

// versionLess compares dotted numeric versions component-wise.
func versionLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		if ai != bi {
			return ai < bi
		}
	}
	return len(as) < len(bs)
}

// DocumentTitle builds the display title shown on the cover, in the
// shell <title>, and in the running page header.
func DocumentTitle(project, version string) string {
	if version != "" {
		return fmt.Sprintf("%s Documentation v%s", project, version)
	}
	return project + " Documentation"
}

// OutputFileName builds the PDF name: version-stamped with the run date
// when a version was found, a plain fallback otherwise. Spaces in the
// project name become underscores.
func OutputFileName(project, version string, now time.Time) string {
	stem := strings.ReplaceAll(project, " ", "_")
	if version != "" {
		return fmt.Sprintf("%s_Docs_v%s_%s.pdf", stem, version, dateutil.Stamp(now))
	}
	return stem + "_Documentation.pdf"
}
