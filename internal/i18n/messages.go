package i18n

// Interface text.
const (
	MsgAppName           = "30 Day Challenge"
	MsgTagline           = "Stay strong, %s!"
	MsgDaysSucceeded     = "Days succeeded"
	MsgCurrentStreak     = "Current streak"
	MsgLongestStreak     = "Longest streak"
	MsgSuccessRate       = "Success rate"
	MsgDaysFailed        = "Days failed"
	MsgDaysRemaining     = "%d days remaining"
	MsgCooldownTitle     = "Relapse cooldown"
	MsgCooldownBody      = "Take a breath. Checking days is paused for 24 hours."
	MsgCooldownRemaining = "Cooldown ends in %02d:%02d:%02d"
	MsgAchievementToast  = "Achievement unlocked: %s %s"
	MsgTracker           = "Tracker"
	MsgDashboard         = "Dashboard"
	MsgAchievements      = "Achievements"
	MsgSettings          = "Settings"
	MsgLeaderboard       = "Leaderboard"
	MsgJournalFor        = "Journal for day %d"
	MsgJournalPrompt     = "How did today go?"
	MsgStartsIn          = "The challenge starts in %dd %02dh %02dm %02ds"
	MsgEndsIn            = "Time left: %dd %02dh %02dm %02ds"
	MsgPreviewHint       = "Press p to preview the tracker"
	MsgPreviewNotice     = "Preview mode: today is treated as day 15"
	MsgWelcome           = "What should we call you?"
	MsgReminderTitle     = "Daily check-in"
	MsgReminderBody      = "Day %d of %d. Did you make it through today?"
	MsgSyncFailed        = "Saved locally, but sync failed: %s"
	MsgFutureDay         = "Day %d has not happened yet"
	MsgNoEntries         = "No one is on the board yet"
	MsgYou               = "you"
	MsgShareCreated      = "Share link: %s"
	MsgChallengeOver     = "The challenge is complete"
	MsgCelebration       = "You did it! All 30 days, done."
	MsgDismiss           = "Press any key to continue"
)

var quotes = []string{
	"Discipline is choosing what you want most over what you want now.",
	"Every day you hold the line, the line gets easier to hold.",
	"You are stronger than the urge.",
	"Small wins, repeated, become big ones.",
	"The urge passes. Your progress stays.",
	"One day at a time is all anyone ever does.",
	"Your future self is watching. Make them proud.",
	"Strength grows in the moments you think you cannot go on.",
	"Do not trade what you want most for what you want now.",
	"Consistency beats intensity.",
	"Be the person who keeps promises to themselves.",
	"A streak is just one good decision, made again.",
	"Hard days count double.",
	"The best view comes after the hardest climb.",
	"You did not come this far to only come this far.",
	"Focus on the next step, not the whole staircase.",
	"Control your mind or it will control you.",
	"Comfort is the enemy of growth.",
	"Every check mark is proof you can do hard things.",
	"Fall seven times, stand up eight.",
	"Willpower is a muscle. Today you trained it.",
	"Energy flows where attention goes.",
	"Your habits write your story.",
	"Stay patient and trust the process.",
	"Progress, not perfection.",
	"What you resist today becomes easy tomorrow.",
	"Respect yourself enough to walk away from temptation.",
	"The pain of discipline weighs ounces; regret weighs tons.",
	"Finish what you started.",
	"Thirty days can change everything.",
}

var vietnamese = map[string]string{
	MsgAppName:           "Thử thách 30 ngày",
	MsgTagline:           "Cố lên, %s!",
	MsgDaysSucceeded:     "Số ngày thành công",
	MsgCurrentStreak:     "Chuỗi hiện tại",
	MsgLongestStreak:     "Chuỗi dài nhất",
	MsgSuccessRate:       "Tỉ lệ thành công",
	MsgDaysFailed:        "Số ngày thất bại",
	MsgDaysRemaining:     "Còn %d ngày",
	MsgCooldownTitle:     "Thời gian hồi phục",
	MsgCooldownBody:      "Hít thở sâu. Việc đánh dấu ngày tạm dừng trong 24 giờ.",
	MsgCooldownRemaining: "Hồi phục kết thúc sau %02d:%02d:%02d",
	MsgAchievementToast:  "Mở khóa thành tựu: %s %s",
	MsgTracker:           "Theo dõi",
	MsgDashboard:         "Bảng điều khiển",
	MsgAchievements:      "Thành tựu",
	MsgSettings:          "Cài đặt",
	MsgLeaderboard:       "Bảng xếp hạng",
	MsgJournalFor:        "Nhật ký ngày %d",
	MsgJournalPrompt:     "Hôm nay của bạn thế nào?",
	MsgStartsIn:          "Thử thách bắt đầu sau %dn %02dg %02dp %02dgy",
	MsgEndsIn:            "Thời gian còn lại: %dn %02dg %02dp %02dgy",
	MsgPreviewHint:       "Nhấn p để xem trước",
	MsgPreviewNotice:     "Chế độ xem trước: hôm nay được tính là ngày 15",
	MsgWelcome:           "Chúng tôi nên gọi bạn là gì?",
	MsgReminderTitle:     "Điểm danh hằng ngày",
	MsgReminderBody:      "Ngày %d trên %d. Hôm nay bạn có vượt qua không?",
	MsgSyncFailed:        "Đã lưu trên máy, nhưng đồng bộ thất bại: %s",
	MsgFutureDay:         "Ngày %d chưa tới",
	MsgNoEntries:         "Chưa có ai trên bảng xếp hạng",
	MsgYou:               "bạn",
	MsgShareCreated:      "Liên kết chia sẻ: %s",
	MsgChallengeOver:     "Thử thách đã kết thúc",
	MsgCelebration:       "Bạn đã làm được! Trọn vẹn 30 ngày.",
	MsgDismiss:           "Nhấn phím bất kỳ để tiếp tục",

	"First Week":             "Tuần đầu tiên",
	"Succeed on 7 days":      "Thành công 7 ngày",
	"On Fire":                "Bùng cháy",
	"Reach a 7 day streak":   "Đạt chuỗi 7 ngày liên tiếp",
	"Halfway There":          "Đã đi được nửa đường",
	"Succeed on 15 days":     "Thành công 15 ngày",
	"Finisher":               "Về đích",
	"Succeed on all 30 days": "Thành công cả 30 ngày",

	quotes[0]:  "Kỷ luật là chọn điều bạn muốn nhất thay vì điều bạn muốn ngay lúc này.",
	quotes[1]:  "Mỗi ngày bạn giữ vững, việc giữ vững lại dễ hơn.",
	quotes[2]:  "Bạn mạnh mẽ hơn cơn thôi thúc.",
	quotes[3]:  "Những chiến thắng nhỏ, lặp lại, sẽ thành chiến thắng lớn.",
	quotes[4]:  "Cơn thôi thúc sẽ qua. Tiến bộ của bạn ở lại.",
	quotes[5]:  "Ai cũng chỉ sống từng ngày một.",
	quotes[6]:  "Bản thân tương lai đang dõi theo. Hãy khiến họ tự hào.",
	quotes[7]:  "Sức mạnh lớn lên vào những lúc bạn nghĩ mình không thể tiếp tục.",
	quotes[8]:  "Đừng đổi điều bạn muốn nhất lấy điều bạn muốn ngay lúc này.",
	quotes[9]:  "Kiên trì thắng cường độ.",
	quotes[10]: "Hãy là người giữ lời hứa với chính mình.",
	quotes[11]: "Một chuỗi chỉ là một quyết định đúng, được lặp lại.",
	quotes[12]: "Những ngày khó khăn được tính gấp đôi.",
	quotes[13]: "Cảnh đẹp nhất đến sau con dốc khó nhất.",
	quotes[14]: "Bạn không đi xa thế này chỉ để dừng ở đây.",
	quotes[15]: "Tập trung vào bước tiếp theo, không phải cả cầu thang.",
	quotes[16]: "Hãy làm chủ tâm trí, nếu không nó sẽ làm chủ bạn.",
	quotes[17]: "Sự thoải mái là kẻ thù của trưởng thành.",
	quotes[18]: "Mỗi dấu tích là bằng chứng bạn làm được việc khó.",
	quotes[19]: "Ngã bảy lần, đứng dậy tám lần.",
	quotes[20]: "Ý chí là cơ bắp. Hôm nay bạn đã rèn luyện nó.",
	quotes[21]: "Năng lượng chảy về nơi sự chú ý hướng tới.",
	quotes[22]: "Thói quen viết nên câu chuyện của bạn.",
	quotes[23]: "Hãy kiên nhẫn và tin vào quá trình.",
	quotes[24]: "Tiến bộ, không phải hoàn hảo.",
	quotes[25]: "Điều bạn cưỡng lại hôm nay sẽ dễ dàng vào ngày mai.",
	quotes[26]: "Hãy đủ tôn trọng bản thân để quay lưng với cám dỗ.",
	quotes[27]: "Nỗi đau của kỷ luật nặng vài lạng; hối tiếc nặng hàng tấn.",
	quotes[28]: "Hãy hoàn thành điều bạn đã bắt đầu.",
	quotes[29]: "Ba mươi ngày có thể thay đổi mọi thứ.",
}
