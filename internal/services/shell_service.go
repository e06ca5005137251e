package services

// ShellState is the auth-gate state of the role-gated shell.
type ShellState string

const (
	StateUnknown         ShellState = "unknown"
	StateChecking        ShellState = "checking"
	StateAuthenticated   ShellState = "authenticated"
	StateUnauthenticated ShellState = "unauthenticated"
)

// GateFlow is the explicit state machine behind the shell: unknown → checking
// on mount, then checking → authenticated/unauthenticated once the session
// resolves. There is no terminal state; a flow may resolve again after a
// logout.
type GateFlow struct {
	requireAuth bool
	state       ShellState
}

func NewGateFlow(requireAuth bool) *GateFlow {
	return &GateFlow{requireAuth: requireAuth, state: StateUnknown}
}

func (f *GateFlow) State() ShellState { return f.state }

func (f *GateFlow) Mount() ShellState {
	f.state = StateChecking
	return f.state
}

func (f *GateFlow) Resolve(sess *Session) ShellState {
	if sess != nil {
		f.state = StateAuthenticated
	} else {
		f.state = StateUnauthenticated
	}
	return f.state
}

// Gated reports whether the flow must withhold protected content.
func (f *GateFlow) Gated() bool {
	return f.requireAuth && f.state != StateAuthenticated
}

// ShellView is the chrome decision for one render pass.
type ShellView struct {
	State          ShellState `json:"state"`
	Role           Role       `json:"role,omitempty"`
	Header         string     `json:"header,omitempty"`
	Footer         string     `json:"footer,omitempty"`
	RenderChildren bool       `json:"render_children"`
	Placeholder    string     `json:"placeholder,omitempty"`
	Redirect       string     `json:"redirect,omitempty"`
}

const (
	checkingPlaceholder = "Checking authentication..."
	loginPath           = "/login"
)

type ShellService struct{}

func NewShellService() *ShellService { return &ShellService{} }

// Render decides the chrome for one request. When auth is required and no
// session is active, the view carries a neutral placeholder and a redirect to
// the login surface; protected children are withheld even for this single
// pass.
func (s *ShellService) Render(requireAuth bool, fallback Role, sess *Session) ShellView {
	flow := NewGateFlow(requireAuth)
	flow.Mount()
	state := flow.Resolve(sess)
	if flow.Gated() {
		return ShellView{
			State:       state,
			Placeholder: checkingPlaceholder,
			Redirect:    loginPath,
		}
	}
	role := fallback
	if sess != nil {
		role = sess.Role
	}
	view := ShellView{State: state, Role: role, RenderChildren: true}
	view.Header, view.Footer = chromeFor(role)
	return view
}

// chromeFor maps a role to its header/footer pair. The admin heuristic shares
// the parent dashboard chrome; the child layout has no footer.
func chromeFor(role Role) (header, footer string) {
	switch role {
	case RoleParent, RoleAdmin:
		return "DashboardHeader", "DashboardFooter"
	case RoleChild:
		return "ChildHeader", ""
	default:
		return "PublicHeader", "PublicFooter"
	}
}
