package glazewm

// Monitor describes a display known to the window manager.
type Monitor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	IsPrimary   bool    `json:"isPrimary"`
	ScaleFactor float64 `json:"scaleFactor,omitempty"`
	DPI         int     `json:"dpi,omitempty"`
}

// Workspace describes a workspace and its placement.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	IsDisplayed bool   `json:"isDisplayed,omitempty"`
	HasFocus    bool   `json:"hasFocus,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	X           int    `json:"x,omitempty"`
	Y           int    `json:"y,omitempty"`
}

// Window describes a managed application window.
type Window struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ProcessName  string `json:"processName,omitempty"`
	ClassName    string `json:"className,omitempty"`
	DisplayState string `json:"displayState,omitempty"`
	HasFocus     bool   `json:"hasFocus,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	X            int    `json:"x,omitempty"`
	Y            int    `json:"y,omitempty"`
}

// Container is the generic node of the window manager's tree; the
// focused container may be a window, a workspace, or a split container.
type Container struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	HasFocus bool   `json:"hasFocus,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
}

// BindingMode describes an active keybinding mode.
type BindingMode struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// Query response envelopes. The data field of each query response wraps
// its payload in a single keyed object.
type (
	monitorsData struct {
		Monitors []Monitor `json:"monitors"`
	}

	workspacesData struct {
		Workspaces []Workspace `json:"workspaces"`
	}

	windowsData struct {
		Windows []Window `json:"windows"`
	}

	focusedData struct {
		Focused *Container `json:"focused"`
	}
)
