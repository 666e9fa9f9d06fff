package apierrors

const (
	MsgFailListTasks      = "errorListTasks"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskAlreadyClaimed = "taskAlreadyClaimed"
	MsgFailClaimTask      = "failClaimTask"
	MsgFailUnclaimTask    = "failUnclaimTask"

	MsgInvalidUserID      = "invalidUserID"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgUserNotFound       = "userNotFound"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgWrongPassword      = "wrongPassword"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
	MsgFailListUsers      = "failListUsers"
	MsgFailDeleteUser     = "failDeleteUser"
	MsgFailGetSettings    = "failGetSettings"
	MsgFailUpdateSettings = "failUpdateSettings"
	MsgFailUpdateProfile  = "failUpdateProfile"
	MsgFailChangePassword = "failChangePassword"
	MsgFailExportUserData = "failExportUserData"

	MsgFailDashboardStats = "failDashboardStats"
	MsgFailUserStats      = "failUserStats"
	MsgFailAnalytics      = "failAnalytics"
	MsgFailTeamOverview   = "failTeamOverview"
	MsgFailNotifications  = "failNotifications"
)
