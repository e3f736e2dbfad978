package recurrence

import (
	"time"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
)

// Display-name lookups keyed by (number, language). Keeping a single table
// per kind avoids the English and Romanian entries drifting apart.

var dayNames = map[time.Weekday]map[i18n.Language]string{
	time.Sunday:    {i18n.English: "Sunday", i18n.Romanian: "Duminică"},
	time.Monday:    {i18n.English: "Monday", i18n.Romanian: "Luni"},
	time.Tuesday:   {i18n.English: "Tuesday", i18n.Romanian: "Marți"},
	time.Wednesday: {i18n.English: "Wednesday", i18n.Romanian: "Miercuri"},
	time.Thursday:  {i18n.English: "Thursday", i18n.Romanian: "Joi"},
	time.Friday:    {i18n.English: "Friday", i18n.Romanian: "Vineri"},
	time.Saturday:  {i18n.English: "Saturday", i18n.Romanian: "Sâmbătă"},
}

// Romanian month names are lowercase in running text, matching how the
// ro-RO locale renders long month names.
var monthNames = map[time.Month]map[i18n.Language]string{
	time.January:   {i18n.English: "January", i18n.Romanian: "ianuarie"},
	time.February:  {i18n.English: "February", i18n.Romanian: "februarie"},
	time.March:     {i18n.English: "March", i18n.Romanian: "martie"},
	time.April:     {i18n.English: "April", i18n.Romanian: "aprilie"},
	time.May:       {i18n.English: "May", i18n.Romanian: "mai"},
	time.June:      {i18n.English: "June", i18n.Romanian: "iunie"},
	time.July:      {i18n.English: "July", i18n.Romanian: "iulie"},
	time.August:    {i18n.English: "August", i18n.Romanian: "august"},
	time.September: {i18n.English: "September", i18n.Romanian: "septembrie"},
	time.October:   {i18n.English: "October", i18n.Romanian: "octombrie"},
	time.November:  {i18n.English: "November", i18n.Romanian: "noiembrie"},
	time.December:  {i18n.English: "December", i18n.Romanian: "decembrie"},
}

// DayName returns the localized weekday display name.
func DayName(day time.Weekday, lang i18n.Language) string {
	return dayNames[day][lang]
}

// MonthName returns the localized month display name.
func MonthName(month time.Month, lang i18n.Language) string {
	return monthNames[month][lang]
}
