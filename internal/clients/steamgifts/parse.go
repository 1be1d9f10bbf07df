package steamgifts

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	codePattern   = regexp.MustCompile(`/giveaway/([^/]+)/`)
	costPattern   = regexp.MustCompile(`\((\d+)P\)`)
	copiesPattern = regexp.MustCompile(`([\d,]+)\s+Copies`)
	appIDPattern  = regexp.MustCompile(`/apps/(\d+)/`)
	digitsPattern = regexp.MustCompile(`(\d+)`)
)

func parseListings(doc *goquery.Document) []Listing {
	listings := []Listing{}
	doc.Find(".giveaway__row-inner-wrap").Each(func(_ int, row *goquery.Selection) {
		if row.ParentsFiltered(".pinned-giveaways__inner-wrap").Length() > 0 {
			return
		}
		heading := row.Find("a.giveaway__heading__name").First()
		code := codeFromHref(heading.AttrOr("href", ""))
		if code == "" {
			return
		}

		l := Listing{
			Code:    code,
			Name:    strings.TrimSpace(heading.Text()),
			Copies:  1,
			Entered: row.HasClass("is-faded"),
		}
		row.Find(".giveaway__heading__thin").Each(func(_ int, thin *goquery.Selection) {
			text := thin.Text()
			if m := costPattern.FindStringSubmatch(text); m != nil {
				l.PointsCost, _ = strconv.Atoi(m[1])
			}
			if m := copiesPattern.FindStringSubmatch(text); m != nil {
				if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil && n > 0 {
					l.Copies = n
				}
			}
		})
		l.EndTime = firstTimestamp(row)
		l.CatalogItemID = appIDFromStyle(row.Find("a.giveaway_image_thumbnail").AttrOr("style", ""))
		listings = append(listings, l)
	})
	return listings
}

// parseTableRows reads the won and entered history tables
func parseTableRows(doc *goquery.Document) []Listing {
	listings := []Listing{}
	doc.Find(".table__row-inner-wrap").Each(func(_ int, row *goquery.Selection) {
		heading := row.Find("a.table__column__heading").First()
		code := codeFromHref(heading.AttrOr("href", ""))
		if code == "" {
			return
		}

		l := Listing{Code: code, Copies: 1}
		price := heading.Find("span.is-faded")
		if m := costPattern.FindStringSubmatch(price.Text()); m != nil {
			l.PointsCost, _ = strconv.Atoi(m[1])
		}
		l.Name = strings.TrimSpace(strings.Replace(heading.Text(), price.Text(), "", 1))

		if fill := row.Find(".table__column--width-fill"); fill.Length() > 0 {
			l.EndTime = firstTimestamp(fill)
		} else {
			l.EndTime = firstTimestamp(row)
		}
		l.CatalogItemID = appIDFromStyle(row.Find("a.table_image_thumbnail").AttrOr("style", ""))
		listings = append(listings, l)
	})
	return listings
}

func parseBalance(doc *goquery.Document) (int, bool) {
	el := doc.Find("span.nav__points").First()
	if el.Length() == 0 {
		return 0, false
	}
	m := digitsPattern.FindStringSubmatch(strings.ReplaceAll(el.Text(), ",", ""))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseXSRF(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(`input[name="xsrf_token"]`).First().AttrOr("value", ""))
}

func parseGameID(doc *goquery.Document) (int64, bool) {
	raw, ok := doc.Find(".featured__outer-wrap[data-game-id]").First().Attr("data-game-id")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func codeFromHref(href string) string {
	m := codePattern.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}

func firstTimestamp(sel *goquery.Selection) *time.Time {
	raw, ok := sel.Find("span[data-timestamp]").First().Attr("data-timestamp")
	if !ok {
		return nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	t := time.Unix(secs, 0).UTC()
	return &t
}

func appIDFromStyle(style string) *int64 {
	m := appIDPattern.FindStringSubmatch(style)
	if m == nil {
		return nil
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
