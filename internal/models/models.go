package models

import "time"

type Section struct {
	ID    string
	Label string
}

type Service struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Gradient    string
}

type Stat struct {
	Value string
	Label string
}

type Feature struct {
	Title    string
	Subtitle string
	Icon     string
	Gradient string
}

type Project struct {
	Title       string
	Description string
	Image       string
	Tags        []string
	Gradient    string
}

type Channel struct {
	Name   string
	Detail string
	URL    string
	Icon   string
}

type Site struct {
	Name        string
	Logo        string
	FooterLogo  string
	Tagline     string
	About       string
	Address     string
	Sections    []Section
	Services    []Service
	Stats       []Stat
	Features    []Feature
	Projects    []Project
	Channels    []Channel
	FooterLinks []string
	Copyright   int
}

type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Inquiry struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Delivered bool
	Error     string
	CreatedAt time.Time
}

type IndexPageData struct {
	Site   Site
	Draft  Draft
	Notice *Notice
}

type InboxStats struct {
	Total  int
	Failed int
}

type AdminPageData struct {
	Inquiries []Inquiry
	Stats     InboxStats
	Message   string
	Error     string
}
