// Copyright (C) 2026 RIPARO Project (CremaCrem)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	portalFlag   string
	emailFlag    string
	passwordFlag string
	rememberFlag bool

	statusFlag   string
	typeFlag     string
	dateFromFlag string
	dateToFlag   string
	pageFlag     int
	allPagesFlag bool

	submitterFlag   string
	ageFlag         int
	genderFlag      string
	addressFlag     string
	descriptionFlag string
	photoFlags      []string
	resolveFlag     bool

	subjectFlag   string
	messageFlag   string
	anonymousFlag bool
	contactFlag   string
	reportRefFlag string

	rejectFlag bool
	rangeFlag  string

	setFlags       []string
	idDocumentFlag string

	rootCmd = &cobra.Command{
		Use:   "riparo",
		Short: "A cli for the RIPARO municipal citizen reporting platform",
		Long: `riparo lets citizens file and track incident reports, municipal staff
				triage and resolve them, and the mayor's office monitor aggregate
				activity, all against a RIPARO backend.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			shutdownApp()
		},
	}

	// --- Authentication ---
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in to a RIPARO portal",
		Run:   runLogin, // Defined in cmd_auth.go
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored session",
		Run:   runLogout, // Defined in cmd_auth.go
	}
	signupCmd = &cobra.Command{
		Use:   "signup",
		Short: "Register a citizen account (pending staff verification)",
		Run:   runSignup, // Defined in cmd_auth.go
	}
	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Run:   runWhoami, // Defined in cmd_auth.go
	}

	// --- Reports ---
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Submit and manage incident reports",
	}
	reportSubmitCmd = &cobra.Command{
		Use:   "submit",
		Short: "File a new incident report",
		Run:   runReportSubmit, // Defined in cmd_report.go
	}
	reportTrackCmd = &cobra.Command{
		Use:   "track",
		Short: "List your own reports, with optional local filters",
		Run:   runReportTrack, // Defined in cmd_report.go
	}
	reportListCmd = &cobra.Command{
		Use:   "list",
		Short: "List reports across the municipality (staff/mayor)",
		Run:   runReportList, // Defined in cmd_report.go
	}
	reportShowCmd = &cobra.Command{
		Use:   "show [report]",
		Short: "Show one report by numeric id or RPT reference",
		Args:  cobra.ExactArgs(1),
		Run:   runReportShow, // Defined in cmd_report.go
	}
	reportProgressCmd = &cobra.Command{
		Use:   "progress [report-id] [status]",
		Short: "Move a report through its lifecycle (staff)",
		Args:  cobra.ExactArgs(2),
		Run:   runReportProgress, // Defined in cmd_report.go
	}
	reportPhotosCmd = &cobra.Command{
		Use:   "photos [report-id] [file...]",
		Short: "Attach resolution photos to a report (staff)",
		Args:  cobra.MinimumNArgs(2),
		Run:   runReportPhotos, // Defined in cmd_report.go
	}

	// --- Feedback ---
	feedbackCmd = &cobra.Command{
		Use:   "feedback",
		Short: "Send and review citizen feedback",
	}
	feedbackSendCmd = &cobra.Command{
		Use:   "send",
		Short: "Send feedback to the municipality, optionally anonymous",
		Run:   runFeedbackSend, // Defined in cmd_feedback.go
	}
	feedbackListCmd = &cobra.Command{
		Use:   "list",
		Short: "List received feedback (staff/mayor)",
		Run:   runFeedbackList, // Defined in cmd_feedback.go
	}

	// --- Verification Queue ---
	usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Manage citizen account verification (staff)",
	}
	usersListCmd = &cobra.Command{
		Use:   "list",
		Short: "List accounts awaiting verification",
		Run:   runUsersList, // Defined in cmd_admin.go
	}
	usersVerifyCmd = &cobra.Command{
		Use:   "verify [user-id]",
		Short: "Verify (or with --reject, reject) a pending account",
		Args:  cobra.ExactArgs(1),
		Run:   runUsersVerify, // Defined in cmd_admin.go
	}

	// --- Profile ---
	profileCmd = &cobra.Command{
		Use:   "profile",
		Short: "Manage your citizen profile",
	}
	profileUpdateCmd = &cobra.Command{
		Use:   "update",
		Short: "Request changes to your profile (reviewed by staff)",
		Run:   runProfileUpdate, // Defined in cmd_profile.go
	}

	// --- Profile Update Requests ---
	requestsCmd = &cobra.Command{
		Use:   "requests",
		Short: "Review citizen profile update requests (staff)",
	}
	requestsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List pending profile update requests",
		Run:   runRequestsList, // Defined in cmd_admin.go
	}
	requestsReviewCmd = &cobra.Command{
		Use:   "review [request-id]",
		Short: "Approve (or with --reject, reject) an update request",
		Args:  cobra.ExactArgs(1),
		Run:   runRequestsReview, // Defined in cmd_admin.go
	}

	// --- Statistics ---
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate report activity for a time window",
		Run:   runStats, // Defined in cmd_stats.go
	}

	// --- Dashboard ---
	dashboardCmd = &cobra.Command{
		Use:   "dashboard",
		Short: "Open the full-screen dashboard for your role",
		Run:   runDashboard, // Defined in cmd_dashboard.go
	}
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&portalFlag, "portal", "citizen", "Portal to log in to: citizen, admin, or mayor")
	loginCmd.Flags().StringVar(&emailFlag, "email", "", "Account email (prompts when omitted)")
	loginCmd.Flags().StringVar(&passwordFlag, "password", "", "Account password (prompts when omitted)")
	loginCmd.Flags().BoolVar(&rememberFlag, "remember", false, "Accepted for compatibility; sessions always persist until logout")

	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(whoamiCmd)

	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportSubmitCmd)
	reportSubmitCmd.Flags().StringVar(&submitterFlag, "submitter", "", "Name of the person the report is about")
	reportSubmitCmd.Flags().IntVar(&ageFlag, "age", 0, "Age of the person, if relevant")
	reportSubmitCmd.Flags().StringVar(&genderFlag, "gender", "", "Gender: male, female, or other")
	reportSubmitCmd.Flags().StringVar(&addressFlag, "address", "", "Location of the incident")
	reportSubmitCmd.Flags().StringVar(&typeFlag, "type", "", "Incident category, e.g. road_damage")
	reportSubmitCmd.Flags().StringVar(&descriptionFlag, "description", "", "What happened")
	reportSubmitCmd.Flags().StringArrayVar(&photoFlags, "photo", nil, "Photo to attach (repeatable)")

	reportCmd.AddCommand(reportTrackCmd)
	reportTrackCmd.Flags().StringVar(&statusFlag, "status", "", "Only show reports with this status")
	reportTrackCmd.Flags().StringVar(&typeFlag, "category", "", "Only show reports in this category")
	reportTrackCmd.Flags().StringVar(&dateFromFlag, "from", "", "Only show reports filed on or after this date (YYYY-MM-DD)")
	reportTrackCmd.Flags().StringVar(&dateToFlag, "to", "", "Only show reports filed on or before this date (YYYY-MM-DD)")

	reportCmd.AddCommand(reportListCmd)
	reportListCmd.Flags().StringVar(&statusFlag, "status", "", "Server-side status filter")
	reportListCmd.Flags().StringVar(&typeFlag, "type", "", "Server-side category filter")
	reportListCmd.Flags().StringVar(&dateFromFlag, "from", "", "Server-side date floor (YYYY-MM-DD)")
	reportListCmd.Flags().StringVar(&dateToFlag, "to", "", "Server-side date ceiling (YYYY-MM-DD)")
	reportListCmd.Flags().IntVar(&pageFlag, "page", 1, "Page to fetch")
	reportListCmd.Flags().BoolVar(&allPagesFlag, "all", false, "Walk every page instead of one")

	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportProgressCmd)
	reportCmd.AddCommand(reportPhotosCmd)
	reportPhotosCmd.Flags().BoolVar(&resolveFlag, "resolve", false, "Also mark the report resolved")

	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackSendCmd)
	feedbackSendCmd.Flags().StringVar(&subjectFlag, "subject", "", "Feedback subject line")
	feedbackSendCmd.Flags().StringVar(&messageFlag, "message", "", "Feedback body (prompts when omitted)")
	feedbackSendCmd.Flags().BoolVar(&anonymousFlag, "anonymous", false, "Send without any contact details")
	feedbackSendCmd.Flags().StringVar(&contactFlag, "contact", "", "Contact email for follow-up")
	feedbackSendCmd.Flags().StringVar(&reportRefFlag, "report", "", "RPT reference this feedback is about")
	feedbackCmd.AddCommand(feedbackListCmd)
	feedbackListCmd.Flags().IntVar(&pageFlag, "page", 1, "Page to fetch")

	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersVerifyCmd)
	usersVerifyCmd.Flags().BoolVar(&rejectFlag, "reject", false, "Reject the registration instead of verifying it")

	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().StringArrayVar(&setFlags, "set", nil, "Change to request, as field=value (repeatable)")
	profileUpdateCmd.Flags().StringVar(&idDocumentFlag, "id-document", "", "Photo or scan of a valid government ID")

	rootCmd.AddCommand(requestsCmd)
	requestsCmd.AddCommand(requestsListCmd)
	requestsCmd.AddCommand(requestsReviewCmd)
	requestsReviewCmd.Flags().BoolVar(&rejectFlag, "reject", false, "Reject the request instead of approving it")

	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&rangeFlag, "range", "week", "Time window: day, week, month, or year")

	rootCmd.AddCommand(dashboardCmd)
}
