package domain

type UserProgress struct {
	CompletedSteps int    `yaml:"completed_steps"`
	TotalSteps     int    `yaml:"total_steps"`
	CurrentGoal    string `yaml:"current_goal"`
	Streak         int    `yaml:"streak"`
	Points         int    `yaml:"points"`
	Level          int    `yaml:"level"`
}

// Percent returns completed steps as a whole percentage of total steps.
func (p UserProgress) Percent() int {
	if p.TotalSteps <= 0 {
		return 0
	}
	return p.CompletedSteps * 100 / p.TotalSteps
}

type Achievement struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Unlocked    bool   `yaml:"unlocked"`
	Date        string `yaml:"date"`
}

type ActivityType string

const (
	ActivityAssessment  ActivityType = "assessment"
	ActivityGoal        ActivityType = "goal"
	ActivityAchievement ActivityType = "achievement"
	ActivityMilestone   ActivityType = "milestone"
)

type Activity struct {
	ID          string       `yaml:"id"`
	Type        ActivityType `yaml:"type"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Date        string       `yaml:"date"`
}

type UpcomingTask struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	DueDate  string   `yaml:"due_date"`
	Priority Priority `yaml:"priority"`
}

type SkillProgress struct {
	Skill    string `yaml:"skill"`
	Progress int    `yaml:"progress"`
	Target   int    `yaml:"target"`
}

type CourseStatus string

const (
	CourseCompleted  CourseStatus = "completed"
	CourseInProgress CourseStatus = "in-progress"
	CourseUpcoming   CourseStatus = "upcoming"
)

type Course struct {
	Title    string       `yaml:"title"`
	Status   CourseStatus `yaml:"status"`
	Progress int          `yaml:"progress"`
}

type Goal struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Progress    int      `yaml:"progress"`
	Deadline    string   `yaml:"deadline"`
	Priority    Priority `yaml:"priority"`
}

type StudyGroup struct {
	Name     string `yaml:"name"`
	Members  int    `yaml:"members"`
	Activity string `yaml:"activity"`
}

type Discussion struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Replies int    `yaml:"replies"`
	Time    string `yaml:"time"`
}

// Dashboard is the static progress snapshot shown on the dashboard screen.
type Dashboard struct {
	Progress     UserProgress    `yaml:"progress"`
	Achievements []Achievement   `yaml:"achievements"`
	Activities   []Activity      `yaml:"activities"`
	Tasks        []UpcomingTask  `yaml:"tasks"`
	Skills       []SkillProgress `yaml:"skills"`
	Courses      []Course        `yaml:"courses"`
	Goals        []Goal          `yaml:"goals"`
	StudyGroups  []StudyGroup    `yaml:"study_groups"`
	Discussions  []Discussion    `yaml:"discussions"`
}
