package classify

import (
	"testing"
	"time"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Visual identity Croatian",
			text: "Natječaj za vizualni identitet grada",
			want: CategoryVisualIdentity,
		},
		{
			name: "Visual identity English brand",
			text: "Brand refresh competition",
			want: CategoryVisualIdentity,
		},
		{
			name: "Illustration stem match",
			text: "International Illustration Award",
			want: CategoryIllustration,
		},
		{
			name: "Book design",
			text: "najljepše oblikovane knjige",
			want: CategoryBookDesign,
		},
		{
			name: "UX word boundary",
			text: "UX challenge 2026",
			want: CategoryUXUI,
		},
		{
			name: "Poster maps to graphic design",
			text: "Natječaj za plakat festivala",
			want: CategoryGraphicDesign,
		},
		{
			name: "Fashion",
			text: "modna revija i natječaj",
			want: CategoryFashion,
		},
		{
			name: "Industrial",
			text: "product design award",
			want: CategoryIndustrial,
		},
		{
			name: "Architecture",
			text: "arhitektonski natječaj za interijer",
			want: CategoryArchitecture,
		},
		{
			name: "Typography",
			text: "type design contest",
			want: CategoryTypography,
		},
		{
			name: "Packaging",
			text: "dizajn ambalaže za vino",
			want: CategoryPackaging,
		},
		{
			name: "Communication",
			text: "communication design biennial",
			want: CategoryCommunication,
		},
		{
			name: "Ordering: identity beats poster",
			text: "vizualni identitet i plakat",
			want: CategoryVisualIdentity,
		},
		{
			name: "Fallback is total",
			text: "nešto posve drugo",
			want: CategoryGraphicDesign,
		},
		{
			name: "Empty input still classified",
			text: "",
			want: CategoryGraphicDesign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Category(tt.text); got != tt.want {
				t.Errorf("Category(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	closedAfter := 14 * 24 * time.Hour

	tests := []struct {
		name     string
		text     string
		deadline string
		want     string
	}{
		{
			name: "Results headline closed without deadline",
			text: "Rezultati natječaja za plakat",
			want: competition.StatusClosed,
		},
		{
			name: "Winner keyword closed",
			text: "Winner announced for design award",
			want: competition.StatusClosed,
		},
		{
			name: "Workshop without call keywords is news",
			text: "Radionica tipografije u ožujku",
			want: competition.StatusNews,
		},
		{
			name: "Exhibition without call keywords is news",
			text: "Izložba plakata u Klovićevim dvorima",
			want: competition.StatusNews,
		},
		{
			name: "Workshop with open call stays live",
			text: "Radionica i otvoreni natječaj za polaznike",
			want: competition.StatusActive,
		},
		{
			name:     "Deadline more than 14 days past",
			text:     "Natječaj za vizualni identitet",
			deadline: "2026-01-10",
			want:     competition.StatusClosed,
		},
		{
			name:     "Deadline within 14 days still active",
			text:     "Natječaj za vizualni identitet",
			deadline: "2026-01-25",
			want:     competition.StatusActive,
		},
		{
			name:     "Future deadline active",
			text:     "Call for entries",
			deadline: "2026-05-01",
			want:     competition.StatusActive,
		},
		{
			name: "Plain announcement defaults to active",
			text: "Natječaj za dizajn suvenira",
			want: competition.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.text, tt.deadline, now, closedAfter); got != tt.want {
				t.Errorf("Status(%q, %q) = %q, want %q", tt.text, tt.deadline, got, tt.want)
			}
		})
	}
}

func TestPrize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Amount with EUR",
			text: "nagradni fond 5.000 EUR",
			want: "5.000 EUR",
		},
		{
			name: "Amount with euro sign",
			text: "first prize 2,500 €",
			want: "2,500 EUR",
		},
		{
			name: "Amount with eura",
			text: "nagrada iznosi 1500 eura",
			want: "1500 EUR",
		},
		{
			name: "Keyword only",
			text: "predviđena je nagrada za najbolji rad",
			want: PrizeSeeDetails,
		},
		{
			name: "English keyword only",
			text: "award ceremony details to follow",
			want: PrizeSeeDetails,
		},
		{
			name: "Nothing found",
			text: "prijave traju do kraja mjeseca",
			want: PrizeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prize(tt.text); got != tt.want {
				t.Errorf("Prize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestOrganizer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Explicit organizer label",
			text: "Organizator: Muzej suvremene umjetnosti, Zagreb",
			want: "Muzej suvremene umjetnosti",
		},
		{
			name: "Known organization token",
			text: "natječaj koji provodi ULUPUH u suradnji s partnerima",
			want: "ULUPUH",
		},
		{
			name: "City pattern",
			text: "javni natječaj koji raspisuje Grad Rijeka",
			want: "Grad Rijeka",
		},
		{
			name: "Croatian institution pattern",
			text: "poziv objavljuje Hrvatsko dizajnersko društvo",
			want: "Hrvatsko dizajnersko društvo",
		},
		{
			name: "Library network pattern",
			text: "u organizaciji Knjižnice grada Zagreba",
			want: "Knjižnice grada Zagreba",
		},
		{
			name: "No match yields empty",
			text: "otvoren je natječaj za plakat",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Organizer(tt.text); got != tt.want {
				t.Errorf("Organizer(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
