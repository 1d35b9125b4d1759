package model

// CellType 表示小组类别
type CellType string

const (
	CellTypeAdulto  CellType = "Adulto"
	CellTypeJovem   CellType = "Jovem"
	CellTypeJuvenil CellType = "Juvenil"
	CellTypeKids    CellType = "Kids"

	// AllCellTypes 用于目标/活动面向全部类型的场景
	AllCellTypes = "Todas"
)

// CellTypes 列出全部合法的小组类别
var CellTypes = []CellType{CellTypeAdulto, CellTypeJovem, CellTypeJuvenil, CellTypeKids}

// Youth 表示该类别的报告不统计儿童人数与儿童奉献
func (t CellType) Youth() bool {
	return t == CellTypeJovem || t == CellTypeJuvenil
}

// Valid 判断是否为已知类别
func (t CellType) Valid() bool {
	for _, known := range CellTypes {
		if known == t {
			return true
		}
	}
	return false
}

// Visitor 是报告中嵌入的首次来访者
type Visitor struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	IsBaptized           bool   `json:"isBaptized"`
	HasAttendedEncounter bool   `json:"hasAttendedEncounter"`
}

// Cell 定义小组（célula）记录
// Day 为星期名称（如 Quinta-Feira），Time 为 HH:MM，可带结束时间
type Cell struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Leader            string   `json:"leader"`
	Host              string   `json:"host"`
	Trainee           string   `json:"trainee"`
	Secretary         string   `json:"secretary"`
	Team              []string `json:"team"`
	Address           string   `json:"address"`
	Type              CellType `json:"type"`
	Day               string   `json:"day"`
	Time              string   `json:"time"`
	Region            string   `json:"region"`
	Phone             string   `json:"phone"`
	LeaderPhoto       string   `json:"leaderPhoto,omitempty"`
	DismissedLateDate string   `json:"dismissedLateDate,omitempty"`
}

// Report 定义一次聚会的报告
type Report struct {
	ID                     string    `json:"id"`
	CellID                 string    `json:"cellId"`
	CellName               string    `json:"cellName"`
	Date                   string    `json:"date"`
	Attendance             int       `json:"attendance"`
	Visitors               int       `json:"visitors"`
	Conversions            int       `json:"conversions"`
	WeeklyVisits           int       `json:"weeklyVisits"`
	FirstTimeVisitorsCount int       `json:"firstTimeVisitorsCount"`
	FirstTimeVisitorsList  []Visitor `json:"firstTimeVisitorsList,omitempty"`
	ChildrenCount          int       `json:"childrenCount"`
	Offering               float64   `json:"offering"`
	KidsOffering           float64   `json:"kidsOffering"`
	Summary                string    `json:"summary"`
	IsLate                 bool      `json:"isLate"`
}

// Baptism 记录洗礼候选人
type Baptism struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Date     string `json:"date"`
	CellName string `json:"cellName"`
}

// Share 记录共享给领袖的资料
type Share struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	FileURL     string `json:"fileUrl"`
}

// AppEvent 记录教会活动，CellType 可为 Todas
type AppEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	CellType    string `json:"cellType"`
}

// Goal 记录管理员设定的目标
type Goal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Objective   string `json:"objective"`
	CellType    string `json:"cellType"`
	CellID      string `json:"cellId,omitempty"`
	Report      string `json:"report"`
	IsCompleted bool   `json:"isCompleted"`
}

// NotificationType 枚举通知类别
type NotificationType string

const (
	NotificationVisitor NotificationType = "visitor"
	NotificationLate    NotificationType = "late"
	NotificationEvent   NotificationType = "event"
	NotificationInfo    NotificationType = "info"
	NotificationNotice  NotificationType = "notice"
)

// AppNotification 为站内通知，CellID 为空时对所有领袖可见
type AppNotification struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	Date         string           `json:"date"`
	IsRead       bool             `json:"isRead"`
	Type         NotificationType `json:"type"`
	VisitorPhone string           `json:"visitorPhone,omitempty"`
	CellID       string           `json:"cellId,omitempty"`
}

// UserRole 表示登录角色
type UserRole string

const (
	RoleNone   UserRole = ""
	RoleLeader UserRole = "leader"
	RoleAdmin  UserRole = "admin"
)

// AuthState 是缓存在会话中的登录状态
type AuthState struct {
	Role            UserRole `json:"role"`
	Cell            *Cell    `json:"cell"`
	IsAuthenticated bool     `json:"isAuthenticated"`
	IsConfirmed     bool     `json:"isConfirmed"`
}
