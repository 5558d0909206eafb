package model

import (
	"errors"
	"fmt"
	"strings"
)

// Profile is a viewer persona; it decides the order projects are shown in.
type Profile string

const (
	ProfileRecruiter Profile = "recruiter"
	ProfileEngineer  Profile = "engineer"
	ProfileStranger  Profile = "stranger"
)

var ErrUnknownProfile = errors.New("unknown profile")

// Profiles lists every profile in picker order.
func Profiles() []Profile {
	return []Profile{ProfileRecruiter, ProfileEngineer, ProfileStranger}
}

func (p Profile) Valid() bool {
	switch p {
	case ProfileRecruiter, ProfileEngineer, ProfileStranger:
		return true
	}
	return false
}

// Label is the display name used by the profile picker and the header avatar.
func (p Profile) Label() string {
	switch p {
	case ProfileRecruiter:
		return "Recruiter"
	case ProfileEngineer:
		return "Engineer"
	case ProfileStranger:
		return "Internet Stranger"
	}
	return string(p)
}

// Initial is the single letter shown in the avatar badge.
func (p Profile) Initial() string {
	l := p.Label()
	if l == "" {
		return "?"
	}
	return l[:1]
}

func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (want recruiter|engineer|stranger)", ErrUnknownProfile, s)
	}
	return p, nil
}

// Priority maps each profile to its rank. Lower ranks sort first.
type Priority map[Profile]int

type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Subtitle        string   `json:"subtitle" yaml:"subtitle"`
	Description     string   `json:"description" yaml:"description"`
	FullDescription string   `json:"fullDescription,omitempty" yaml:"fullDescription"`
	Tag             string   `json:"tag" yaml:"tag"`
	TechStack       []string `json:"techStack" yaml:"techStack"`

	Achievements      int `json:"achievements" yaml:"achievements"`
	TotalAchievements int `json:"totalAchievements" yaml:"totalAchievements"`
	Progress          int `json:"progress" yaml:"progress"`

	CoverImage      string `json:"coverImage" yaml:"coverImage"`
	BackgroundImage string `json:"backgroundImage" yaml:"backgroundImage"`

	LiveURL       string   `json:"liveUrl,omitempty" yaml:"liveUrl"`
	GithubURL     string   `json:"githubUrl,omitempty" yaml:"githubUrl"`
	SourcePrivate bool     `json:"sourcePrivate,omitempty" yaml:"sourcePrivate"`
	DemoVideo     string   `json:"demoVideo,omitempty" yaml:"demoVideo"`
	Screenshots   []string `json:"screenshots,omitempty" yaml:"screenshots"`

	Priority Priority `json:"priority" yaml:"priority"`
}

// Rank returns the project's rank for p. ok is false when the priority map has no entry.
func (p Project) Rank(profile Profile) (rank int, ok bool) {
	rank, ok = p.Priority[profile]
	return rank, ok
}

// SourceNotice describes how the source link should be presented.
//
// A GitHub URL always wins; the private notice only shows when there is no link.
func (p Project) SourceNotice() (url string, private bool) {
	if u := strings.TrimSpace(p.GithubURL); u != "" {
		return u, false
	}
	return "", p.SourcePrivate
}

// Links returns the project's outbound links in display order.
func (p Project) Links() []Link {
	var out []Link
	if u := strings.TrimSpace(p.LiveURL); u != "" {
		out = append(out, Link{Kind: LinkLive, Label: "Live site", URL: u})
	}
	if u, _ := p.SourceNotice(); u != "" {
		out = append(out, Link{Kind: LinkSource, Label: "Source code", URL: u})
	}
	if u := strings.TrimSpace(p.DemoVideo); u != "" {
		out = append(out, Link{Kind: LinkDemo, Label: "Demo video", URL: u})
	}
	return out
}

type LinkKind string

const (
	LinkLive   LinkKind = "live"
	LinkSource LinkKind = "source"
	LinkDemo   LinkKind = "demo"
)

type Link struct {
	Kind  LinkKind `json:"kind"`
	Label string   `json:"label"`
	URL   string   `json:"url"`
}
