package game

// Event names on the outbound channel. Clients key their handlers off
// these strings, so they are part of the wire contract.
const (
	EventPlayerJoined   = "PlayerJoined"
	EventMembersUpdate  = "ReceiveMembersUpdate"
	EventPlayerLeft     = "PlayerLeft"
	EventGameStarted    = "GameStarted"
	EventGameStatus     = "GameStatus"
	EventCellUpdated    = "CellUpdated"
	EventScoreUpdated   = "ScoreUpdated"
	EventErrorMessage   = "ErrorMessage"
	EventReceiveScores  = "ReceiveAllScores"
	EventNewGame        = "NewGame"
	EventUpdateCell     = "UpdateCell"
	EventPlayerComplete = "PlayerCompleted"
	EventReceiveBoard   = "ReceiveBoard"
)

// Messenger is the boundary to the realtime transport. The coordinators
// never touch connections directly; they describe deliveries in terms of
// one connection or one room group and the transport fans them out.
// Sends are fire-and-forget: a failed delivery never rolls back state.
type Messenger interface {
	AddToGroup(connID, pin string)
	RemoveFromGroup(connID, pin string)
	SendToCaller(connID, event string, args ...interface{})
	SendToGroup(pin, event string, args ...interface{})
}
