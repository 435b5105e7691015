package adapters

import (
	"github.com/de-tools/time-atlas/pkg/models/api"
	"github.com/de-tools/time-atlas/pkg/models/domain"
)

func MapReportDomainToApi(rep *domain.Report) api.Report {
	apiReport := api.Report{
		Title:    rep.Title,
		Start:    rep.Period.Start,
		End:      rep.Period.End,
		Days:     []api.DaySection{},
		Summary:  MapHoursDomainToApi(rep.Summary),
		Unmapped: rep.Unmapped,
		Empty:    rep.Empty,
	}

	for _, day := range rep.Days {
		apiReport.Days = append(apiReport.Days, MapDaySectionDomainToApi(day))
	}

	return apiReport
}

func MapDaySectionDomainToApi(day domain.DaySection) api.DaySection {
	section := api.DaySection{
		Day:   day.Day,
		Lines: []api.ProjectLine{},
		Hours: MapHoursDomainToApi(day.Hours),
	}

	for _, line := range day.Lines {
		section.Lines = append(section.Lines, api.ProjectLine{
			Project:  line.Project,
			Hours:    line.Hours,
			Notes:    line.Notes,
			Billable: line.Billable,
		})
	}

	return section
}

func MapActivityDomainToApi(activity domain.Activity) api.Activity {
	return api.Activity{
		ID:       activity.ID,
		Name:     activity.Name,
		Project:  activity.Project,
		Billable: activity.Billable,
		Mapped:   activity.Mapped,
	}
}

func MapHoursDomainToApi(hours domain.HoursSummary) api.Hours {
	return api.Hours{
		Billable:    hours.Billable,
		NonBillable: hours.NonBillable,
		Total:       hours.Total,
	}
}
