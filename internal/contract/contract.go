// Package contract exposes the request and response shapes used between
// the CLI and the services.
package contract

import "github.com/Geetanshgarg/future-gaze/internal/app"

type ResultsRequest = app.ResultsRequest

type ResultsSource = app.ResultsSource

const (
	SourceHandoff ResultsSource = app.SourceHandoff
	SourceStored  ResultsSource = app.SourceStored
	SourceNone    ResultsSource = app.SourceNone
)

type ProfileSummary = app.ProfileSummary

type ResultsResponse = app.ResultsResponse

type CareersRequest = app.CareersRequest

type CareersResponse = app.CareersResponse

type DashboardResponse = app.DashboardResponse

type HistoryEntry = app.HistoryEntry
