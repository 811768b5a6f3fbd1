package sst

// Command mnemonics, in menu order.
const (
	CmdLongRange  = "LRS"
	CmdShortRange = "SRS"
	CmdMap        = "MAP"
	CmdFireCtl    = "FSC"
	CmdImpulse    = "IMP"
	CmdWarp       = "WRP"
	CmdPhaser     = "PHA"
	CmdTorpedo    = "PHO"
	CmdDock       = "DOK"
	CmdMine       = "MNE"
	CmdHail       = "HAI"
	CmdWait       = "WAI"
	CmdDestruct   = "SD!"
	CmdHelp       = "HELP"
)

// Commands lists every command the player can choose.
var Commands = []string{
	CmdLongRange, CmdShortRange, CmdMap, CmdFireCtl, CmdImpulse, CmdWarp, CmdPhaser,
	CmdTorpedo, CmdDock, CmdMine, CmdHail, CmdWait, CmdDestruct, CmdHelp,
}

// Start menu choices.
const (
	MenuAccept = "ACCEPT"
	MenuAbout  = "ABOUT"
	MenuQuit   = "QUIT"
)

var menuPrompt = []string{"SST", "Do you accept", "command of the", "USS Enterprise?"}

var aboutText = []string{
	"SST - Super Star Trek for the terminal.",
	"Your mission: explore strange new worlds and rid the known universe of the Klingon menace.",
	"The universe is a grid of 8x8 sectors, each divided into 8x8 coordinates.",
	"Pick a command or a value with the arrow keys and press enter to execute it.",
	"Every command costs time. Klingons recover their strength and hunt star bases while you plan.",
	"Have fun.",
}

var helpText = []string{
	"HELP - Captain's manual",
	"LRS - Long range scan. Shows the current and surrounding sectors as three digits: Klingons, bases, stars.",
	"SRS - Short range scan. Shows the current sector with the Enterprise (E), Klingons (K), bases (B), stars (*) and stars with planets (P).",
	"MAP - Map of Klingons, bases and stars assembled from earlier LRS and SRS scans.",
	"FSC - Fire solutions calculator. Heading and distance to every object in the sector.",
	"IMP - Impulse drive within about 10 coordinates. You cannot move onto an occupied coordinate or off the edge of the universe.",
	"WRP - Warp drive between sectors. Obstacles and the edge of the universe bounce you to a free coordinate nearby.",
	"PHA - Phasers. Fire an energy beam at each Klingon in the sector. A shot is limited to half your reserves or 1000 units.",
	"PHO - Photon torpedo along a heading. It destroys the first thing it hits, so mind the bases and stars.",
	"DOK - Dock with an adjacent star base to fill the energy tanks and torpedo racks.",
	"MNE - Mine dilithium from the planet of an adjacent star.",
	"HAI - Hail. Communications are not installed.",
	"WAI - Wait a number of days.",
	"SD! - Self destruct, for when all is lost.",
	"Headings are degrees clockwise from up: 0 is up, 90 is right.",
}
