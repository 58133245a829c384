package sqlinline

const QInsertPaymentLog = `--sql 7a8b9c0d-1e2f-4a3b-9c8d-7e6f5a4b3c2d
insert into payment_logs(submission_id, action, message, log_data, created_at)
values ($1::bigint, $2::text, $3::text, $4::jsonb, now());
`

const QListPaymentLogs = `--sql 4b5c6d7e-8f9a-4b0c-a1d2-e3f4a5b6c7d8
select id, submission_id, action, message, log_data, created_at
from payment_logs
where submission_id = $1::bigint
order by created_at asc, id asc;
`
