package example

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "todo"
	TaskStatusDone TaskStatus = "done"
)

type SocialPlatform string

const (
	SocialPlatformLinkedIn SocialPlatform = "linkedin"
)

// Label has no constants, so it is free text.
type Label string

type Task struct {
	Status TaskStatus
	Label  Label
}

type SocialPost struct {
	Platform SocialPlatform
}

func bad() {
	t := &Task{}
	t.Status = "archived" // want "enum field Status assigned string literal"

	_ = SocialPost{Platform: "mastodon"} // want "enum field Platform assigned string literal"
}

func good() {
	t := &Task{}
	t.Status = TaskStatusDone // OK: using constant
	t.Label = "urgent"        // OK: not an enum

	_ = SocialPost{Platform: SocialPlatformLinkedIn}
}

func alsoGood() {
	// OK: Variable, not literal
	status := TaskStatusTodo
	t := &Task{Status: status}
	_ = t
}
