// Package content holds the static portfolio text the terminal plays back.
package content

import "strings"

// Tone picks the palette style for a heading.
type Tone int

const (
	ToneAccent Tone = iota
	ToneInfo
	ToneSuccess
	ToneWarn
	ToneCommand
)

// Section is a heading followed by plain lines.
type Section struct {
	Title string
	Tone  Tone
	Lines []string
}

// File is an entry of the fake working directory.
type File struct {
	Name string
	Section
}

// Profile describes the portfolio owner.
type Profile struct {
	User     string
	Name     string
	Role     string
	Tagline  string
	Status   string
	Email    string
	GitHub   string
	LinkedIn string
}

// Owner is the profile shown by whoami, about and contact.
var Owner = Profile{
	User:     "rafata",
	Name:     "Rafata Alfatih",
	Role:     "Cybersecurity Specialist & Cyber Deconstructor",
	Tagline:  "Breaking down barriers between security and innovation",
	Status:   "Online and ready to secure your systems!",
	Email:    "rafataalfatih55@gmail.com",
	GitHub:   "github.com/GitVerseRALF",
	LinkedIn: "linkedin.com/in/rafata-alfatih",
}

// Skills is the `skills` listing.
var Skills = Section{
	Title: "Technical Skills:",
	Tone:  ToneWarn,
	Lines: []string{
		"• Cybersecurity Analysis",
		"• Penetration Testing",
		"• Network Security",
		"• Reverse Engineering",
		"• Python, JavaScript, TypeScript",
		"• React, Next.js, Node.js",
	},
}

// Projects is the `projects` listing.
var Projects = Section{
	Title: "Featured Projects:",
	Tone:  ToneInfo,
	Lines: []string{
		"• Career Compass - Job matching platform",
		"• Crime Dashboard - AI-powered crime analytics",
		"• Security Risk Management - Centralized security platform",
		"• Digital Forensic Analysis - Operation Rembrandt investigation",
	},
}

var files = []File{
	{Name: "about.txt", Section: Section{Title: "=== ABOUT RAFATA ALFATIH ===", Tone: ToneAccent, Lines: []string{
		Owner.Role,
		Owner.Tagline,
	}}},
	{Name: "skills.txt", Section: Section{Title: "=== TECHNICAL SKILLS ===", Tone: ToneWarn, Lines: []string{
		"Cybersecurity: Analysis, Penetration Testing, Network Security",
		"Programming: Python, JavaScript, TypeScript, Java, C++",
	}}},
	{Name: "projects.txt", Section: Section{Title: "=== FEATURED PROJECTS ===", Tone: ToneInfo, Lines: []string{
		"1. Career Compass - Job matching platform",
		"2. Crime Dashboard - AI-powered crime analytics",
	}}},
	{Name: "contact.txt", Section: Section{Title: "=== CONTACT INFORMATION ===", Tone: ToneSuccess, Lines: []string{
		"Email: " + Owner.Email,
		"GitHub: " + Owner.GitHub,
	}}},
	{Name: "resume.txt", Section: Section{Title: "=== RESUME SUMMARY ===", Tone: ToneCommand, Lines: []string{
		"Education: BSc Computing, President University",
		"Experience: Multiple cybersecurity internships",
	}}},
	{Name: "experience.txt", Section: Section{Title: "=== WORK EXPERIENCE ===", Tone: ToneAccent, Lines: []string{
		"• TATA - Cybersecurity Analyst (2025)",
		"• Datacom - Cybersecurity Consultant (2025)",
	}}},
	{Name: "README.md", Section: Section{Title: "=== PORTFOLIO README ===", Tone: ToneInfo, Lines: []string{
		"Welcome to my interactive portfolio terminal!",
		`Type "help" for a full list of commands.`,
	}}},
}

// Files returns the directory listing in display order.
func Files() []File {
	return append([]File(nil), files...)
}

// FileNames returns the file names in display order.
func FileNames() []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

// Lookup finds a file by exact name; file names are case-sensitive.
func Lookup(name string) (File, bool) {
	for _, f := range files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// ResumeName is the file name offered for the text resume download.
const ResumeName = "Rafata_Alfatih_Resume.txt"

// Resume renders the plain-text resume served by `download resume`.
func Resume() string {
	lines := []string{
		strings.ToUpper(Owner.Name),
		Owner.Role,
		"Email: " + Owner.Email,
		"GitHub: " + Owner.GitHub,
		"LinkedIn: " + Owner.LinkedIn,
		"",
		"SUMMARY",
		Owner.Tagline,
		"",
		"SKILLS",
	}
	for _, s := range Skills.Lines {
		lines = append(lines, strings.TrimPrefix(s, "• "))
	}
	lines = append(lines, "", "PROJECTS")
	for _, p := range Projects.Lines {
		lines = append(lines, strings.TrimPrefix(p, "• "))
	}
	if f, ok := Lookup("experience.txt"); ok {
		lines = append(lines, "", "EXPERIENCE")
		for _, e := range f.Lines {
			lines = append(lines, strings.TrimPrefix(e, "• "))
		}
	}
	if f, ok := Lookup("resume.txt"); ok {
		lines = append(lines, "", "EDUCATION", f.Lines[0])
	}
	return strings.Join(lines, "\n") + "\n"
}
